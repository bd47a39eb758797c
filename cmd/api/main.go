package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-erp-backoffice/internal/handler"
	"go-erp-backoffice/internal/middleware"
	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/service"
	"go-erp-backoffice/internal/ws"
	"go-erp-backoffice/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, relying on environment")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.Permission{},
		&model.Role{},
		&model.Department{},
		&model.User{},
		&model.Menu{},
		&model.Customer{},
		&model.Supplier{},
		&model.MaterialCategory{},
		&model.Material{},
		&model.Warehouse{},
	)

	// 3. Seed catalogs, roles, menus, and the admin account
	seedDefaults(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	deptRepo := repository.NewDepartmentRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	permRepo := repository.NewPermissionRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	materialRepo := repository.NewMaterialRepo(db)
	categoryRepo := repository.NewMaterialCategoryRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, deptRepo, roleRepo)
	deptService := service.NewDepartmentService(deptRepo, userRepo, db)
	roleService := service.NewRoleService(roleRepo, permRepo)
	permService := service.NewPermissionService(permRepo, db)
	menuService := service.NewMenuService(menuRepo, permRepo, db)
	customerService := service.NewCustomerService(customerRepo, wsHub)
	supplierService := service.NewSupplierService(supplierRepo, wsHub)
	materialService := service.NewMaterialService(materialRepo, categoryRepo, wsHub)
	categoryService := service.NewMaterialCategoryService(categoryRepo, materialRepo, db)
	warehouseService := service.NewWarehouseService(warehouseRepo, userRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService, menuService)
	userHandler := handler.NewUserHandler(userService)
	deptHandler := handler.NewDepartmentHandler(deptService)
	roleHandler := handler.NewRoleHandler(roleService)
	permHandler := handler.NewPermissionHandler(permService)
	menuHandler := handler.NewMenuHandler(menuService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	materialHandler := handler.NewMaterialHandler(materialService, categoryService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "ERP Backoffice v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/user", authHandler.Me)
	protected.Get("/auth/menus", authHandler.Menus)

	// Department Routes
	protected.Get("/departments", middleware.RequirePermission("foundation:department:view"), deptHandler.GetDepartments)
	protected.Get("/departments/tree", middleware.RequirePermission("foundation:department:view"), deptHandler.GetDepartmentTree)
	protected.Get("/departments/:id", middleware.RequirePermission("foundation:department:view"), deptHandler.GetDepartment)
	protected.Post("/departments", middleware.RequirePermission("foundation:department:add"), deptHandler.CreateDepartment)
	protected.Put("/departments/:id", middleware.RequirePermission("foundation:department:edit"), deptHandler.UpdateDepartment)
	protected.Delete("/departments/:id", middleware.RequirePermission("foundation:department:delete"), deptHandler.DeleteDepartment)

	// User Management Routes
	protected.Get("/users", middleware.RequirePermission("foundation:user:view"), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePermission("foundation:user:view"), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePermission("foundation:user:add"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePermission("foundation:user:edit"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePermission("foundation:user:delete"), userHandler.DeleteUser)
	protected.Post("/users/:id/reset_password", middleware.RequirePermission("foundation:user:reset_pwd"), userHandler.ResetPassword)

	// Role Routes
	protected.Get("/roles", middleware.RequirePermission("foundation:role:view"), roleHandler.GetRoles)
	protected.Get("/roles/:id", middleware.RequirePermission("foundation:role:view"), roleHandler.GetRole)
	protected.Post("/roles", middleware.RequirePermission("foundation:role:add"), roleHandler.CreateRole)
	protected.Put("/roles/:id", middleware.RequirePermission("foundation:role:edit"), roleHandler.UpdateRole)
	protected.Delete("/roles/:id", middleware.RequirePermission("foundation:role:delete"), roleHandler.DeleteRole)
	protected.Put("/roles/:id/permissions", middleware.RequirePermission("foundation:role:edit"), roleHandler.AssignPermissions)

	// Permission Routes
	protected.Get("/permissions", middleware.RequirePermission("foundation:permission:view"), permHandler.GetPermissions)
	protected.Get("/permissions/:id", middleware.RequirePermission("foundation:permission:view"), permHandler.GetPermission)
	protected.Post("/permissions", middleware.RequirePermission("foundation:permission:add"), permHandler.CreatePermission)
	protected.Put("/permissions/:id", middleware.RequirePermission("foundation:permission:edit"), permHandler.UpdatePermission)
	protected.Delete("/permissions/:id", middleware.RequirePermission("foundation:permission:delete"), permHandler.DeletePermission)

	// Menu Routes
	protected.Get("/menus", middleware.RequirePermission("foundation:menu:view"), menuHandler.GetMenus)
	protected.Get("/menus/tree", middleware.RequirePermission("foundation:menu:view"), menuHandler.GetMenuTree)
	protected.Get("/menus/:id", middleware.RequirePermission("foundation:menu:view"), menuHandler.GetMenu)
	protected.Post("/menus", middleware.RequirePermission("foundation:menu:add"), menuHandler.CreateMenu)
	protected.Put("/menus/:id", middleware.RequirePermission("foundation:menu:edit"), menuHandler.UpdateMenu)
	protected.Delete("/menus/:id", middleware.RequirePermission("foundation:menu:delete"), menuHandler.DeleteMenu)

	// Customer Routes
	protected.Get("/customers", middleware.RequirePermission("foundation:customer:view"), customerHandler.GetCustomers)
	protected.Get("/customers/:id", middleware.RequirePermission("foundation:customer:view"), customerHandler.GetCustomer)
	protected.Post("/customers", middleware.RequirePermission("foundation:customer:add"), customerHandler.CreateCustomer)
	protected.Put("/customers/:id", middleware.RequirePermission("foundation:customer:edit"), customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", middleware.RequirePermission("foundation:customer:delete"), customerHandler.DeleteCustomer)

	// Supplier Routes
	protected.Get("/suppliers", middleware.RequirePermission("foundation:supplier:view"), supplierHandler.GetSuppliers)
	protected.Get("/suppliers/:id", middleware.RequirePermission("foundation:supplier:view"), supplierHandler.GetSupplier)
	protected.Post("/suppliers", middleware.RequirePermission("foundation:supplier:add"), supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", middleware.RequirePermission("foundation:supplier:edit"), supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", middleware.RequirePermission("foundation:supplier:delete"), supplierHandler.DeleteSupplier)

	// Material Category Routes
	protected.Get("/material-categories", middleware.RequirePermission("inventory:category:view"), materialHandler.GetCategories)
	protected.Get("/material-categories/tree", middleware.RequirePermission("inventory:category:view"), materialHandler.GetCategoryTree)
	protected.Get("/material-categories/:id", middleware.RequirePermission("inventory:category:view"), materialHandler.GetCategory)
	protected.Post("/material-categories", middleware.RequirePermission("inventory:category:add"), materialHandler.CreateCategory)
	protected.Put("/material-categories/:id", middleware.RequirePermission("inventory:category:edit"), materialHandler.UpdateCategory)
	protected.Delete("/material-categories/:id", middleware.RequirePermission("inventory:category:delete"), materialHandler.DeleteCategory)

	// Material Routes
	protected.Get("/materials", middleware.RequirePermission("inventory:material:view"), materialHandler.GetMaterials)
	protected.Get("/materials/:id", middleware.RequirePermission("inventory:material:view"), materialHandler.GetMaterial)
	protected.Post("/materials", middleware.RequirePermission("inventory:material:add"), materialHandler.CreateMaterial)
	protected.Put("/materials/:id", middleware.RequirePermission("inventory:material:edit"), materialHandler.UpdateMaterial)
	protected.Delete("/materials/:id", middleware.RequirePermission("inventory:material:delete"), materialHandler.DeleteMaterial)

	// Warehouse Routes
	protected.Get("/warehouses", middleware.RequirePermission("inventory:warehouse:view"), warehouseHandler.GetWarehouses)
	protected.Get("/warehouses/:id", middleware.RequirePermission("inventory:warehouse:view"), warehouseHandler.GetWarehouse)
	protected.Post("/warehouses", middleware.RequirePermission("inventory:warehouse:add"), warehouseHandler.CreateWarehouse)
	protected.Put("/warehouses/:id", middleware.RequirePermission("inventory:warehouse:edit"), warehouseHandler.UpdateWarehouse)
	protected.Delete("/warehouses/:id", middleware.RequirePermission("inventory:warehouse:delete"), warehouseHandler.DeleteWarehouse)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			logrus.WithError(err).Fatal("Server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

// seedDefaults creates the permission catalog, default roles with their
// module grants, the department tree, the navigation menus, and the admin
// account when they don't exist yet.
func seedDefaults(db *gorm.DB) {
	permRepo := repository.NewPermissionRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	deptRepo := repository.NewDepartmentRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 1. Permission catalog first; everything else references it
	if err := permRepo.SeedDefaults(); err != nil {
		logrus.WithError(err).Warn("Failed to seed permissions")
	}

	// 2. Roles
	if err := roleRepo.SeedDefaults(); err != nil {
		logrus.WithError(err).Warn("Failed to seed roles")
	}

	// 3. Assign module grants to non-superuser default roles. The super_admin
	// role gets no rows on purpose: superusers bypass the catalog entirely.
	for roleCode, modules := range model.RoleModuleGrants {
		role, err := roleRepo.FindByCode(roleCode)
		if err != nil || len(role.Permissions) > 0 {
			continue
		}
		perms, err := permRepo.FindByModules(modules)
		if err != nil {
			logrus.WithError(err).WithField("role", roleCode).Warn("Failed to resolve module grants")
			continue
		}
		if err := roleRepo.ReplacePermissions(role.ID, perms); err != nil {
			logrus.WithError(err).WithField("role", roleCode).Warn("Failed to assign permissions")
			continue
		}
		logrus.WithField("role", roleCode).Info("Role granted module permissions")
	}

	// 4. Department tree
	if err := deptRepo.SeedDefaults(); err != nil {
		logrus.WithError(err).Warn("Failed to seed departments")
	}

	// 5. Navigation menus
	if err := menuRepo.SeedDefaults(permRepo); err != nil {
		logrus.WithError(err).Warn("Failed to seed menus")
	}

	// 6. Admin account
	seedAdmin(db, userRepo, roleRepo)
}

func seedAdmin(db *gorm.DB, userRepo repository.UserRepository, roleRepo repository.RoleRepository) {
	if existing, _ := userRepo.FindByUsername("admin"); existing != nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		logrus.Warn("ADMIN_PASSWORD not set, using default; change it immediately")
	}

	admin := &model.User{
		Username:    "admin",
		EmployeeNo:  "EMP0001",
		Email:       "admin@example.com",
		Position:    "System Administrator",
		Gender:      "other",
		Status:      model.UserStatusActive,
		IsSuperuser: true,
		IsActive:    true,
	}
	admin.CreatedBy = "system"
	if err := admin.SetPassword(password); err != nil {
		logrus.WithError(err).Error("Failed to hash admin password")
		return
	}

	// Tag the admin with the super_admin role for display; access comes from
	// the superuser flag, not the role
	if role, err := roleRepo.FindByCode(model.RoleSuperAdmin); err == nil {
		admin.Roles = []*model.Role{role}
	}

	if err := userRepo.Create(admin); err != nil {
		logrus.WithError(err).Error("Failed to seed admin user")
		return
	}
	logrus.Info("Seeded default admin user")
}
