package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/backend"
	"medicare-gateway/internal/cart"
	"medicare-gateway/internal/domain"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubProductService struct {
	products map[string]*domain.Product
	list     []domain.Product
	listErr  error
	getErr   error
}

func (s *stubProductService) List(_ context.Context, _ backend.ListProductsQuery) ([]domain.Product, int, error) {
	return s.list, len(s.list), s.listErr
}

func (s *stubProductService) Get(_ context.Context, id string) (*domain.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubCategoryService struct {
	categories []domain.Category
	err        error
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

type stubOrderService struct {
	order      *domain.Order
	orders     []domain.Order
	createErr  error
	listErr    error
	trackErr   error
	lastCookie string
	lastInput  backend.CreateOrderInput
}

func (s *stubOrderService) Create(_ context.Context, cookie string, in backend.CreateOrderInput) (*domain.Order, error) {
	s.lastCookie = cookie
	s.lastInput = in
	return s.order, s.createErr
}

func (s *stubOrderService) ListMine(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.listErr
}

func (s *stubOrderService) Track(_ context.Context, _ string) (*domain.Order, error) {
	if s.trackErr != nil {
		return nil, s.trackErr
	}
	return s.order, nil
}

type stubUserService struct {
	session    *domain.Session
	sessionErr error
	users      []backend.User
	usersErr   error
	updated    *backend.User
	updateErr  error
	lastStatus string
}

func (s *stubUserService) GetSession(_ context.Context, _ string) (*domain.Session, error) {
	return s.session, s.sessionErr
}

func (s *stubUserService) ListUsers(_ context.Context, _ string) ([]backend.User, error) {
	return s.users, s.usersErr
}

func (s *stubUserService) UpdateUserStatus(_ context.Context, _, _, status string) (*backend.User, error) {
	s.lastStatus = status
	return s.updated, s.updateErr
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error {
	return s.err
}

func testDeps() Deps {
	return Deps{
		Products:   &stubProductService{products: map[string]*domain.Product{}},
		Categories: &stubCategoryService{},
		Orders:     &stubOrderService{},
		Users:      &stubUserService{},
		Carts:      cart.NewRegistry(),
		Pinger:     &stubPinger{},
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), deps, Options{
		CartCookie:           "medicare_cart",
		SessionLookupTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

// serve issues a request, forwarding any cookies set on earlier responses so
// a test can hold one cart session across calls.
func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func withCookies(req *http.Request, from *httptest.ResponseRecorder) *http.Request {
	for _, c := range from.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}
