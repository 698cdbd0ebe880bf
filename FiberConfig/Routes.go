package FiberConfig

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"CaOffice/Controllers"
	"CaOffice/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	clientController := Controllers.NewClientController(db)
	employeeController := Controllers.NewEmployeeController(db)
	docTypeController := Controllers.NewDocTypeController(db)
	taskTypeController := Controllers.NewTaskTypeController(db)
	documentController := Controllers.NewDocumentController(db)
	taskAllotmentController := Controllers.NewTaskAllotmentController(db)
	subAllotmentController := Controllers.NewSubAllotmentController(db)
	suballotmentController := Controllers.NewSuballotmentController(db)
	loginController := Controllers.NewLoginController(db)
	reportController := Controllers.NewReportController(db)

	// Client routes
	clients := app.Group("/clients")
	clients.Get("/", clientController.GetClients)
	clients.Post("/", clientController.CreateClient)
	clients.Get("/:code", clientController.GetClient)
	clients.Put("/:code", clientController.UpdateClient)
	clients.Delete("/:code", clientController.DeleteClient)

	// Employee routes
	employees := app.Group("/employees")
	employees.Get("/", employeeController.GetEmployees)
	employees.Post("/", employeeController.CreateEmployee)
	employees.Get("/:emp_code", employeeController.GetEmployee)
	employees.Put("/:emp_code", employeeController.UpdateEmployee)
	employees.Delete("/:emp_code", employeeController.DeleteEmployee)

	// Document type routes
	docTypes := app.Group("/doc-types")
	docTypes.Get("/", docTypeController.GetDocTypes)
	docTypes.Post("/", docTypeController.CreateDocType)
	docTypes.Get("/:id", docTypeController.GetDocType)
	docTypes.Put("/:id", docTypeController.UpdateDocType)
	docTypes.Delete("/:id", docTypeController.DeleteDocType)

	// Task type routes
	taskTypes := app.Group("/task-types")
	taskTypes.Get("/", taskTypeController.GetTaskTypes)
	taskTypes.Post("/", taskTypeController.CreateTaskType)
	taskTypes.Get("/:id", taskTypeController.GetTaskType)
	taskTypes.Put("/:id", taskTypeController.UpdateTaskType)
	taskTypes.Delete("/:id", taskTypeController.DeleteTaskType)

	// Document record routes
	documents := app.Group("/doc-recived-master")
	documents.Get("/", documentController.GetDocuments)
	documents.Post("/", documentController.CreateDocument)
	documents.Get("/:code", documentController.GetDocument)
	documents.Put("/:code", documentController.UpdateDocument)
	documents.Delete("/:code", documentController.DeleteDocument)

	// Task allotment routes - export goes BEFORE the code route to avoid conflicts
	taskAllotments := app.Group("/task-allotment")
	taskAllotments.Get("/", taskAllotmentController.GetTaskAllotments)
	taskAllotments.Get("/export", reportController.ExportTaskAllotments)
	taskAllotments.Post("/", taskAllotmentController.CreateTaskAllotment)
	taskAllotments.Get("/:code", taskAllotmentController.GetTaskAllotment)
	taskAllotments.Put("/:code", taskAllotmentController.UpdateTaskAllotment)
	taskAllotments.Delete("/:code", taskAllotmentController.DeleteTaskAllotment)

	// Constrained sub-allotment routes
	subAllotments := app.Group("/sub-allotment")
	subAllotments.Get("/", subAllotmentController.GetSubAllotments)
	subAllotments.Post("/", subAllotmentController.CreateSubAllotment)
	subAllotments.Get("/:code", subAllotmentController.GetSubAllotment)
	subAllotments.Put("/:code", subAllotmentController.UpdateSubAllotment)
	subAllotments.Delete("/:code", subAllotmentController.DeleteSubAllotment)

	// Free-text sub-allotment routes
	suballotments := app.Group("/sub-allotments")
	suballotments.Get("/", suballotmentController.GetSuballotments)
	suballotments.Post("/", suballotmentController.CreateSuballotment)
	suballotments.Get("/:code", suballotmentController.GetSuballotment)
	suballotments.Put("/:code", suballotmentController.UpdateSuballotment)
	suballotments.Delete("/:code", suballotmentController.DeleteSuballotment)

	// Login routes
	login := app.Group("/login")
	login.Get("/", loginController.Ping)
	login.Post("/", loginController.Login)
}

// NewApp builds the fiber app with the cross-cutting middleware every
// handler runs behind.
func NewApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(middleware.ErrorLogger())
	app.Use(compress.New())

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:4200"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	return app
}

// Serve wires everything together and blocks on the listener.
func Serve(db *gorm.DB) error {
	app := NewApp()
	SetupRoutes(app, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("API server running at http://127.0.0.1:%s\n", port)
	return app.Listen(":" + port)
}
