package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"xetasuite/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.authenticate)

	mux := pat.New()

	// Auth
	mux.Get("/auth/csrf", standardMiddleware.ThenFunc(app.authHandler.CSRFToken))
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.authHandler.Login))
	mux.Post("/auth/logout", standardMiddleware.ThenFunc(app.authHandler.Logout))
	mux.Get("/auth/me", authMiddleware.ThenFunc(app.authHandler.Me))
	mux.Get("/auth/ws-ticket", authMiddleware.ThenFunc(app.authHandler.WSTicket))
	mux.Put("/auth/password", authMiddleware.ThenFunc(app.userHandler.UpdatePassword))

	// Sites
	mux.Post("/sites", authMiddleware.Append(app.requirePermission(models.PermSitesManage)).ThenFunc(app.siteHandler.CreateSite))
	mux.Get("/sites", authMiddleware.Append(app.requirePermission(models.PermSitesView)).ThenFunc(app.siteHandler.GetSites))
	mux.Get("/sites/:id", authMiddleware.Append(app.requirePermission(models.PermSitesView)).ThenFunc(app.siteHandler.GetSite))
	mux.Put("/sites/:id", authMiddleware.Append(app.requirePermission(models.PermSitesManage)).ThenFunc(app.siteHandler.UpdateSite))
	mux.Del("/sites/:id", authMiddleware.Append(app.requirePermission(models.PermSitesManage)).ThenFunc(app.siteHandler.DeleteSite))

	// Suppliers
	mux.Post("/suppliers", authMiddleware.Append(app.requirePermission(models.PermSuppliersManage)).ThenFunc(app.supplierHandler.CreateSupplier))
	mux.Get("/suppliers", authMiddleware.Append(app.requirePermission(models.PermSuppliersView)).ThenFunc(app.supplierHandler.GetSuppliers))
	mux.Get("/suppliers/:id", authMiddleware.Append(app.requirePermission(models.PermSuppliersView)).ThenFunc(app.supplierHandler.GetSupplier))
	mux.Put("/suppliers/:id", authMiddleware.Append(app.requirePermission(models.PermSuppliersManage)).ThenFunc(app.supplierHandler.UpdateSupplier))
	mux.Del("/suppliers/:id", authMiddleware.Append(app.requirePermission(models.PermSuppliersManage)).ThenFunc(app.supplierHandler.DeleteSupplier))

	// Item categories
	mux.Post("/item-categories", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemCategoryHandler.CreateItemCategory))
	mux.Get("/item-categories", authMiddleware.Append(app.requirePermission(models.PermItemsView)).ThenFunc(app.itemCategoryHandler.GetItemCategories))
	mux.Get("/item-categories/:id", authMiddleware.Append(app.requirePermission(models.PermItemsView)).ThenFunc(app.itemCategoryHandler.GetItemCategory))
	mux.Put("/item-categories/:id", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemCategoryHandler.UpdateItemCategory))
	mux.Del("/item-categories/:id", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemCategoryHandler.DeleteItemCategory))

	// Items
	mux.Post("/items", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/items", authMiddleware.Append(app.requirePermission(models.PermItemsView)).ThenFunc(app.itemHandler.GetItems))
	mux.Get("/items/:id", authMiddleware.Append(app.requirePermission(models.PermItemsView)).ThenFunc(app.itemHandler.GetItem))
	mux.Put("/items/:id", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemHandler.DeleteItem))
	mux.Post("/items/:id/stock", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemHandler.AdjustStock))
	mux.Get("/items/:id/stock-entries", authMiddleware.Append(app.requirePermission(models.PermItemsView)).ThenFunc(app.itemHandler.GetStockEntries))
	mux.Get("/items/:id/qrcode", authMiddleware.Append(app.requirePermission(models.PermItemsView)).ThenFunc(app.itemHandler.QRCode))
	mux.Post("/items/:id/photo", authMiddleware.Append(app.requirePermission(models.PermItemsManage)).ThenFunc(app.itemHandler.UploadPhoto))
	mux.Get("/scan/:code", standardMiddleware.ThenFunc(app.itemHandler.Scan))

	// Users
	mux.Post("/users", authMiddleware.Append(app.requirePermission(models.PermUsersManage)).ThenFunc(app.userHandler.CreateUser))
	mux.Get("/users", authMiddleware.Append(app.requirePermission(models.PermUsersView)).ThenFunc(app.userHandler.GetUsers))
	mux.Get("/users/:id", authMiddleware.Append(app.requirePermission(models.PermUsersView)).ThenFunc(app.userHandler.GetUser))
	mux.Put("/users/:id", authMiddleware.Append(app.requirePermission(models.PermUsersManage)).ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/users/:id", authMiddleware.Append(app.requirePermission(models.PermUsersManage)).ThenFunc(app.userHandler.DeleteUser))

	// Cleanings
	mux.Post("/cleanings", authMiddleware.Append(app.requirePermission(models.PermCleaningsManage)).ThenFunc(app.cleaningHandler.CreateCleaning))
	mux.Get("/cleanings", authMiddleware.Append(app.requirePermission(models.PermCleaningsView)).ThenFunc(app.cleaningHandler.GetCleanings))
	mux.Get("/cleanings/:id", authMiddleware.Append(app.requirePermission(models.PermCleaningsView)).ThenFunc(app.cleaningHandler.GetCleaning))
	mux.Put("/cleanings/:id", authMiddleware.Append(app.requirePermission(models.PermCleaningsManage)).ThenFunc(app.cleaningHandler.UpdateCleaning))
	mux.Del("/cleanings/:id", authMiddleware.Append(app.requirePermission(models.PermCleaningsManage)).ThenFunc(app.cleaningHandler.DeleteCleaning))

	// Maintenances
	mux.Post("/maintenances", authMiddleware.Append(app.requirePermission(models.PermMaintenancesManage)).ThenFunc(app.maintenanceHandler.CreateMaintenance))
	mux.Get("/maintenances", authMiddleware.Append(app.requirePermission(models.PermMaintenancesView)).ThenFunc(app.maintenanceHandler.GetMaintenances))
	mux.Get("/maintenances/:id", authMiddleware.Append(app.requirePermission(models.PermMaintenancesView)).ThenFunc(app.maintenanceHandler.GetMaintenance))
	mux.Put("/maintenances/:id", authMiddleware.Append(app.requirePermission(models.PermMaintenancesManage)).ThenFunc(app.maintenanceHandler.UpdateMaintenance))
	mux.Del("/maintenances/:id", authMiddleware.Append(app.requirePermission(models.PermMaintenancesManage)).ThenFunc(app.maintenanceHandler.DeleteMaintenance))

	// Audit logs
	mux.Get("/audit-logs", authMiddleware.Append(app.requirePermission(models.PermAuditView)).ThenFunc(app.auditLogHandler.GetAuditLogs))

	// Websocket (ticket auth, not cookie auth)
	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))

	return mux
}
