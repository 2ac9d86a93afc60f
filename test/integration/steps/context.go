// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/usecase/auth"
	"github.com/finledger/backend/internal/application/usecase/budget"
	"github.com/finledger/backend/internal/application/usecase/category"
	"github.com/finledger/backend/internal/application/usecase/stats"
	"github.com/finledger/backend/internal/application/usecase/transaction"
	"github.com/finledger/backend/internal/infra/server/router"
	"github.com/finledger/backend/internal/integration/adapters"
	"github.com/finledger/backend/internal/integration/entrypoint/controller"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
	"github.com/finledger/backend/internal/integration/persistence"
	"github.com/finledger/backend/internal/integration/persistence/model"
	"github.com/finledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverOnce sync.Once
var testServer *httptest.Server

// testContext carries per-scenario state. The HTTP server and its database
// are shared across scenarios; Before hooks wipe the data between them.
type testContext struct {
	db     *mock.Db
	client *http.Client

	headers      map[string]string
	accessToken  string
	tokens       map[string]string
	categoryIDs  map[string]uuid.UUID
	categoryType map[string]string

	lastCategoryID    string
	lastTransactionID string

	response     *http.Response
	responseBody []byte
}

func startServer(db *mock.Db) *httptest.Server {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		userRepo := persistence.NewUserRepository(db.DbConn)
		categoryRepo := persistence.NewCategoryRepository(db.DbConn)
		transactionRepo := persistence.NewTransactionRepository(db.DbConn)
		budgetRepo := persistence.NewBudgetRepository(db.DbConn)
		unitOfWork := persistence.NewUnitOfWork(db.DbConn)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
		uploadDir, err := os.MkdirTemp("", "finledger-uploads")
		if err != nil {
			panic(err)
		}
		fileStorage, err := adapters.NewLocalFileStorage(uploadDir)
		if err != nil {
			panic(err)
		}

		seedDefaultsUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, seedDefaultsUseCase, unitOfWork)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		currentUserUseCase := auth.NewCurrentUserUseCase(userRepo)

		createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
		listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
		getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
		updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
		deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
		updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
		listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
		findBudgetUseCase := budget.NewFindBudgetUseCase(budgetRepo)

		getStatsUseCase := stats.NewGetStatsUseCase(transactionRepo)
		getStatsByPeriodUseCase := stats.NewGetStatsByPeriodUseCase(transactionRepo)

		healthController := controller.NewHealthController()
		authController := controller.NewAuthController(registerUseCase, loginUseCase)
		categoryController := controller.NewCategoryController(
			createCategoryUseCase,
			listCategoriesUseCase,
			getCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
		)
		transactionController := controller.NewTransactionController(
			createTransactionUseCase,
			listTransactionsUseCase,
			getTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		)
		budgetController := controller.NewBudgetController(createBudgetUseCase, listBudgetsUseCase, findBudgetUseCase)
		dashboardController := controller.NewDashboardController(getStatsUseCase, getStatsByPeriodUseCase)
		uploadController := controller.NewUploadController(fileStorage)

		loginRateLimiter := middleware.NewRateLimiter(mock.NewRedis())
		authMiddleware := middleware.NewAuthMiddleware(tokenService, currentUserUseCase)

		r := router.NewRouter(
			healthController,
			authController,
			categoryController,
			transactionController,
			budgetController,
			dashboardController,
			uploadController,
			loginRateLimiter,
			authMiddleware,
			uploadDir,
		)
		testServer = httptest.NewServer(r.Setup("test"))
	})
	return testServer
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario wires the application once and registers all steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
			"budgets":      &model.BudgetModel{},
		}),
	}
	startServer(test.db)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAsWithPassword)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a transaction of "([^"]*)" exists in "([^"]*)" on "([^"]*)" described as "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a budget of "([^"]*)" exists for "([^"]*)" in month (\d+) of (\d+)$`, test.aBudgetExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.tokens = make(map[string]string)
	t.categoryIDs = make(map[string]uuid.UUID)
	t.categoryType = make(map[string]string)
	t.lastCategoryID = ""
	t.lastTransactionID = ""
	t.response = nil
	t.responseBody = nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(mock.NewRedis())
}
