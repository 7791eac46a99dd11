package handlers

import (
	"github.com/gin-gonic/gin"
	"kyc-loan.backend/internal/domain/entities"
	"kyc-loan.backend/internal/interfaces/http/metrics"
	"kyc-loan.backend/internal/interfaces/http/middleware"
)

// Deps collects the handlers and the auth middleware the route table wires up.
type Deps struct {
	Auth         *AuthHandler
	KYC          *KYCHandler
	Loan         *LoanHandler
	Admin        *AdminHandler
	Super        *SuperAdminHandler
	Audit        *AuditHandler
	Export       *ExportHandler
	Health       *HealthHandler
	AuthRequired gin.HandlerFunc
}

// RegisterRoutes wires the full route table onto r.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	requireCustomer := middleware.RequireRole(entities.UserRoleCustomer)

	api := r.Group("/api")
	{
		api.GET("/health", d.Health.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/register", d.Auth.Register)
			auth.POST("/login", d.Auth.Login)
			auth.POST("/logout", d.AuthRequired, d.Auth.Logout)
			auth.GET("/verify", d.AuthRequired, d.Auth.Verify)
		}

		kyc := api.Group("/kyc")
		kyc.Use(d.AuthRequired)
		{
			kyc.GET("/status", d.KYC.Status)
			kyc.POST("/upload-document", requireCustomer, d.KYC.UploadDocument)
			kyc.GET("/documents", d.KYC.Documents)
			kyc.DELETE("/document/:id", d.KYC.DeleteDocument)
		}

		loans := api.Group("/loans")
		loans.Use(d.AuthRequired)
		{
			loans.POST("/apply", requireCustomer, d.Loan.Apply)
			loans.GET("/my-applications", d.Loan.MyApplications)
			loans.GET("/:id", d.Loan.GetByID)
		}

		admin := api.Group("/admin")
		admin.Use(d.AuthRequired, middleware.RequireAdmin())
		{
			admin.GET("/pending-kyc", d.Admin.PendingKYC)
			admin.POST("/verify-kyc/:user_id", d.Admin.VerifyKYC)
			admin.GET("/loan-requests", d.Admin.LoanRequests)
			admin.POST("/approve-loan/:id", d.Admin.ApproveLoan)
			admin.POST("/reject-loan/:id", d.Admin.RejectLoan)
			admin.GET("/statistics", d.Admin.Statistics)
		}

		audit := api.Group("/audit")
		audit.Use(d.AuthRequired, middleware.RequireAdmin())
		{
			audit.GET("/logs", d.Audit.Logs)
		}

		super := api.Group("/super")
		super.Use(d.AuthRequired, middleware.RequireSuperAdmin())
		{
			super.GET("/admins", d.Super.ListAdmins)
			super.POST("/add-admin", d.Super.AddAdmin)
			super.POST("/delete-admin", d.Super.DeleteAdmin)
		}

		export := api.Group("/export")
		export.Use(d.AuthRequired, middleware.RequireAdmin())
		{
			export.GET("/excel", d.Export.Excel)
			export.GET("/csv", d.Export.CSV)
		}

		downloads := api.Group("/downloads")
		downloads.Use(d.AuthRequired, middleware.RequireAdmin())
		{
			downloads.GET("/reports/:name", d.Export.DownloadReport)
			downloads.GET("/letters/:name", d.Export.DownloadLetter)
		}
	}
}
