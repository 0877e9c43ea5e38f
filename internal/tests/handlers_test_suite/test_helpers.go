package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	api "github.com/princesinghgemini-dotcom/veto/internal/http"
	handler "github.com/princesinghgemini-dotcom/veto/internal/http/handlers"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

var (
	token string

	categoryRepo        *repo.InMemoryCategoryRepository
	productRepo         *repo.InMemoryProductRepository
	variantRepo         *repo.InMemoryVariantRepository
	retailerRepo        *repo.InMemoryRetailerRepository
	retailerProductRepo *repo.InMemoryRetailerProductRepository
	orderRepo           *repo.InMemoryOrderRepository
	listCache           *cache.Memory
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	variantRepo = repo.NewInMemoryVariantRepository()
	handler.SetVariantRepo(variantRepo)

	retailerRepo = repo.NewInMemoryRetailerRepository()
	handler.SetRetailerRepo(retailerRepo)

	retailerProductRepo = repo.NewInMemoryRetailerProductRepository()
	handler.SetRetailerProductRepo(retailerProductRepo)

	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	listCache = cache.NewMemory(time.Minute)
	handler.SetListCache(listCache)
}

func clearAll() {
	categoryRepo.Clear()
	productRepo.Clear()
	variantRepo.Clear()
	retailerRepo.Clear()
	retailerProductRepo.Clear()
	orderRepo.Clear()
	listCache.Flush()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doAdmin sends an authenticated JSON request through the router.
func doAdmin(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, req handler.CategoryCreateRequest) *httptest.ResponseRecorder {
	return doAdmin(r, http.MethodPost, "/admin/categories", req)
}

func createProduct(r http.Handler, req handler.ProductCreateRequest) *httptest.ResponseRecorder {
	return doAdmin(r, http.MethodPost, "/admin/products", req)
}

func createVariant(r http.Handler, productID uuid.UUID, req handler.VariantCreateRequest) *httptest.ResponseRecorder {
	return doAdmin(r, http.MethodPost, fmt.Sprintf("/admin/products/%s/variants", productID), req)
}

func createRetailer(r http.Handler, req handler.RetailerCreateRequest) *httptest.ResponseRecorder {
	return doAdmin(r, http.MethodPost, "/admin/retailers", req)
}

func createMapping(r http.Handler, retailerID uuid.UUID, req handler.RetailerProductCreateRequest) *httptest.ResponseRecorder {
	return doAdmin(r, http.MethodPost, fmt.Sprintf("/admin/retailers/%s/products", retailerID), req)
}

func createOrder(r http.Handler, req handler.OrderCreateRequest) *httptest.ResponseRecorder {
	return doAdmin(r, http.MethodPost, "/admin/orders", req)
}

func decodeBody[T any](w *httptest.ResponseRecorder) (T, error) {
	var out T
	err := json.NewDecoder(w.Body).Decode(&out)
	return out, err
}

// mustSetupCatalog creates a product with one variant mapped to an active
// retailer. Returns the retailer, variant and mapping.
func mustSetupCatalog(r http.Handler) (models.Retailer, models.ProductVariant, models.RetailerProduct, error) {
	wp := createProduct(r, handler.ProductCreateRequest{Name: "Oxytetracycline LA"})
	product, err := decodeBody[models.Product](wp)
	if err != nil {
		return models.Retailer{}, models.ProductVariant{}, models.RetailerProduct{}, err
	}

	price := 12.5
	wv := createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-100", BasePrice: &price})
	variant, err := decodeBody[models.ProductVariant](wv)
	if err != nil {
		return models.Retailer{}, models.ProductVariant{}, models.RetailerProduct{}, err
	}

	wr := createRetailer(r, handler.RetailerCreateRequest{Name: "AgroVet Store"})
	retailer, err := decodeBody[models.Retailer](wr)
	if err != nil {
		return models.Retailer{}, models.ProductVariant{}, models.RetailerProduct{}, err
	}

	wm := createMapping(r, retailer.ID, handler.RetailerProductCreateRequest{
		ProductVariantID: variant.ID,
		Price:            15.0,
		StockQuantity:    20,
	})
	mapping, err := decodeBody[models.RetailerProduct](wm)
	if err != nil {
		return models.Retailer{}, models.ProductVariant{}, models.RetailerProduct{}, err
	}

	return retailer, variant, mapping, nil
}
