package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "hostelbites/internal/delivery/api/middleware"
	"hostelbites/internal/delivery/api/router/handler"
	"hostelbites/internal/delivery/api/validator"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"
	mockSvc "hostelbites/internal/mocks/service"
	mockUC "hostelbites/internal/mocks/usecase"
	"hostelbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
	userEmail  = "resident@hostel.io"
)

type testServer struct {
	e             *echo.Echo
	userUC        *mockUC.MockUserUsecase
	catalogUC     *mockUC.MockCatalogUsecase
	paymentUC     *mockUC.MockPaymentUsecase
	subUC         *mockUC.MockSubscriptionUsecase
	reviewUC      *mockUC.MockReviewUsecase
	mealRequestUC *mockUC.MockMealRequestUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(userToken).Return(&service.Claims{Email: userEmail, Roles: []string{"user"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(adminToken).Return(&service.Claims{Email: "warden@hostel.io", Roles: []string{"admin"}}, nil).Maybe()

	ts := &testServer{
		userUC:        mockUC.NewMockUserUsecase(t),
		catalogUC:     mockUC.NewMockCatalogUsecase(t),
		paymentUC:     mockUC.NewMockPaymentUsecase(t),
		subUC:         mockUC.NewMockSubscriptionUsecase(t),
		reviewUC:      mockUC.NewMockReviewUsecase(t),
		mealRequestUC: mockUC.NewMockMealRequestUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler:        handler.NewUserHandler(handler.UserHandlerParams{UserUC: ts.userUC, Logger: logger}),
		CatalogHandler:     handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: ts.catalogUC, Logger: logger}),
		PaymentHandler:     handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: ts.paymentUC, SubscriptionUC: ts.subUC, Logger: logger}),
		ReviewHandler:      handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: ts.reviewUC, Logger: logger}),
		MealRequestHandler: handler.NewMealRequestHandler(handler.MealRequestHandlerParams{MealRequestUC: ts.mealRequestUC, Logger: logger}),
		AuthMiddleware:     apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokenSvc}),
	})
	r.RegisterRoutes(e)
	ts.e = e

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRegisterAndToken(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		ts := newTestServer(t)
		ts.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterUserInput{Email: userEmail, Name: "Rin"}).
			Return(&entity.User{ID: "u1", Email: userEmail, Name: "Rin", Role: entity.RoleUser}, nil)

		rec := ts.do(t, http.MethodPost, "/users", "", `{"email":"resident@hostel.io","name":"Rin"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"role":"user"`)
	})

	t.Run("register validation happens before the usecase", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/users", "", `{"email":"not-an-email"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email must be a valid email")
	})

	t.Run("malformed json", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/users", "", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		ts := newTestServer(t)
		ts.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists))

		rec := ts.do(t, http.MethodPost, "/users", "", `{"email":"resident@hostel.io","name":"Rin"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})

	t.Run("token", func(t *testing.T) {
		ts := newTestServer(t)
		ts.userUC.EXPECT().IssueToken(mock.Anything, &usecase.IssueTokenInput{IDToken: "firebase"}).
			Return(&usecase.TokenOutput{AccessToken: "jwt"}, nil)

		rec := ts.do(t, http.MethodPost, "/auth/token", "", `{"idToken":"firebase"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"accessToken":"jwt"`)
	})
}

func TestCatalogRoutes(t *testing.T) {
	t.Run("list meals binds query", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().ListMeals(mock.Anything, &usecase.ListMealsInput{
			Category: "breakfast",
			Search:   "egg",
			MinPrice: 1.5,
			MaxPrice: 10,
			Skip:     20,
			Limit:    10,
		}).Return(&usecase.MealListOutput{Meals: []*entity.Meal{}, Total: 0, Skip: 20, Limit: 10}, nil)

		rec := ts.do(t, http.MethodGet, "/meals?category=breakfast&search=egg&minPrice=1.5&maxPrice=10&skip=20&limit=10", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad query number", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/meals?limit=ten", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})

	t.Run("meal not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().GetMeal(mock.Anything, "m404").Return(nil, errors.WithStack(domainerrors.ErrMealNotFound))

		rec := ts.do(t, http.MethodGet, "/meals/m404", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MEAL_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("package by name", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().GetPackage(mock.Anything, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)

		rec := ts.do(t, http.MethodGet, "/packages/Gold", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create package requires admin", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/admin/packages", userToken, `{"name":"Gold","price":500}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates package", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().CreatePackage(mock.Anything, &usecase.CreatePackageInput{Name: "Gold", Price: 500, Level: 3}).
			Return(&entity.Package{ID: "p1", Name: "Gold", Price: 500, Level: 3}, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/admin/packages", adminToken, `{"name":"Gold","price":500,"level":3}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestPaymentRoutes(t *testing.T) {
	t.Run("intent requires authentication", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/payments/intents", "", `{"amount":500}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("intent gateway failure passes provider message", func(t *testing.T) {
		ts := newTestServer(t)
		ts.paymentUC.EXPECT().CreateIntent(mock.Anything, &usecase.CreateIntentInput{Amount: 500, Currency: "usd"}).
			Return(nil, domainerrors.NewGatewayError("stripe", "Your card was declined.", errors.New("card_declined")))

		rec := ts.do(t, http.MethodPost, "/api/v1/payments/intents", userToken, `{"amount":500,"currency":"usd"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "PAYMENT_GATEWAY_ERROR", env.Error.Code)
		assert.Equal(t, "Your card was declined.", env.Error.Message)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("purchase uses the token email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.subUC.EXPECT().ApplyPurchase(mock.Anything, &usecase.ApplyPurchaseInput{
			PackageName:   "Gold",
			UserEmail:     userEmail,
			Amount:        500,
			PaymentMethod: "card",
			TransactionID: "tx1",
		}).Return(&entity.PaymentRecord{Payment: &entity.Payment{UserEmail: userEmail, TransactionID: "tx1"}, Created: true}, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/payments", userToken,
			`{"packageName":"Gold","amount":500,"paymentMethod":"card","transactionId":"tx1","userEmail":"other@hostel.io"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("repeated purchase answers 200", func(t *testing.T) {
		ts := newTestServer(t)
		ts.subUC.EXPECT().ApplyPurchase(mock.Anything, mock.Anything).
			Return(&entity.PaymentRecord{Payment: &entity.Payment{UserEmail: userEmail, TransactionID: "tx2"}, Created: false}, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/payments", userToken,
			`{"packageName":"Gold","amount":500,"paymentMethod":"card","transactionId":"tx2"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("purchase for unregistered user", func(t *testing.T) {
		ts := newTestServer(t)
		ts.subUC.EXPECT().ApplyPurchase(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrUserNotEligible))

		rec := ts.do(t, http.MethodPost, "/api/v1/payments", userToken,
			`{"packageName":"Gold","amount":500,"paymentMethod":"card","transactionId":"tx1"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_ELIGIBLE", decode(t, rec).Error.Code)
	})

	t.Run("ledger store failure is hidden", func(t *testing.T) {
		ts := newTestServer(t)
		ts.subUC.EXPECT().GetPayment(mock.Anything, userEmail).
			Return(nil, domainerrors.NewStoreError(errors.New("socket closed"), "find payment"))

		rec := ts.do(t, http.MethodGet, "/api/v1/payments/me", userToken, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "socket closed")
	})

	t.Run("admin ledger page", func(t *testing.T) {
		ts := newTestServer(t)
		ts.subUC.EXPECT().ListPayments(mock.Anything, int64(10), int64(5)).Return(&usecase.PaymentListOutput{Total: 12}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/payments?skip=10&limit=5", adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReviewRoutes(t *testing.T) {
	t.Run("like", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reviewUC.EXPECT().LikeMeal(mock.Anything, "m1", userEmail).Return(false, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/meals/m1/likes", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"liked":false}`, string(decode(t, rec).Data))
	})

	t.Run("unlike", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reviewUC.EXPECT().UnlikeMeal(mock.Anything, "m1", userEmail).Return(true, nil)

		rec := ts.do(t, http.MethodDelete, "/api/v1/meals/m1/likes", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"removed":true}`, string(decode(t, rec).Data))
	})

	t.Run("review rating out of range", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/meals/m1/reviews", userToken, `{"text":"good","rating":6}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("review", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reviewUC.EXPECT().AddReview(mock.Anything, "m1", &usecase.AddReviewInput{AuthorEmail: userEmail, AuthorName: "Rin", Text: "good", Rating: 4}).
			Return(&entity.Review{AuthorEmail: userEmail, Text: "good", Rating: 4, CreatedAt: time.Now()}, nil)

		rec := ts.do(t, http.MethodPost, "/api/v1/meals/m1/reviews", userToken, `{"authorName":"Rin","text":"good","rating":4}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("my reviews", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reviewUC.EXPECT().ListReviewsByUser(mock.Anything, userEmail).
			Return([]*entity.UserReview{{MealID: "m1", MealTitle: "Khichdi", LikeCount: 2}}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/reviews/me", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMealRequestRoutes(t *testing.T) {
	t.Run("submit duplicate", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().SubmitRequest(mock.Anything, &usecase.SubmitMealRequestInput{MealID: "m1", UserEmail: userEmail}).
			Return(nil, errors.WithStack(domainerrors.ErrDuplicateRequest))

		rec := ts.do(t, http.MethodPost, "/api/v1/meal-requests", userToken, `{"mealId":"m1"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_MEAL_REQUEST", decode(t, rec).Error.Code)
	})

	t.Run("my requests", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().ListRequestsForUser(mock.Anything, userEmail).
			Return([]*entity.MealRequestView{{RequestID: "r1", Title: "Khichdi", LikeCount: 1, ReviewCount: 2}}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/meal-requests/me", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"reviewCount":2`)
	})

	t.Run("cancel", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().CancelRequest(mock.Anything, "r1", userEmail).Return(nil)

		rec := ts.do(t, http.MethodDelete, "/api/v1/meal-requests/r1", userToken, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ticket png", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().GenerateTicketQR(mock.Anything, "r1", userEmail).Return([]byte("\x89PNG"), nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/meal-requests/r1/qr", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	t.Run("admin list rejects unknown status", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/meal-requests?status=lost", adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin list", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().ListRequests(mock.Anything, &usecase.ListMealRequestsInput{Status: "pending", Search: "rin", Limit: 5}).
			Return(&usecase.MealRequestListOutput{Total: 1}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/meal-requests?status=pending&search=rin&limit=5", adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin status update", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().UpdateStatus(mock.Anything, "r1", entity.MealRequestServed).
			Return(&entity.MealRequest{ID: "r1", Status: entity.MealRequestServed}, nil)

		rec := ts.do(t, http.MethodPatch, "/api/v1/admin/meal-requests/r1", adminToken, `{"status":"served"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("scan invalid ticket", func(t *testing.T) {
		ts := newTestServer(t)
		ts.mealRequestUC.EXPECT().ServeByTicket(mock.Anything, "garbage").Return(nil, errors.WithStack(domainerrors.ErrInvalidTicket))

		rec := ts.do(t, http.MethodPost, "/api/v1/admin/meal-requests/scan", adminToken, `{"qrData":"garbage"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_TICKET", decode(t, rec).Error.Code)
	})

	t.Run("scan by resident is forbidden", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/api/v1/admin/meal-requests/scan", userToken, `{"qrData":"x"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
