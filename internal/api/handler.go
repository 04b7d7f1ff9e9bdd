package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/deekxa/tillpoint/domain"
	"github.com/deekxa/tillpoint/internal/billing"
	"github.com/deekxa/tillpoint/internal/catalog"
	"github.com/deekxa/tillpoint/internal/inventory"
	"github.com/deekxa/tillpoint/internal/receipt"
	"github.com/deekxa/tillpoint/internal/recipe"
)

type ctxKey string

const (
	ctxUserID ctxKey = "userID"
	ctxRole   ctxKey = "role"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	db       *sqlx.DB
	inv      *inventory.Store
	products *catalog.Store
	billing  *billing.Service
	secret   string
	taxRate  float64
}

// New constructs a Handler. taxRate is the default applied when a
// checkout request does not carry its own rate.
func New(db *sqlx.DB, inv *inventory.Store, products *catalog.Store, billingSvc *billing.Service, secret string, taxRate float64) *Handler {
	return &Handler{
		db:       db,
		inv:      inv,
		products: products,
		billing:  billingSvc,
		secret:   secret,
		taxRate:  taxRate,
	}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Group(func(protected chi.Router) {
			protected.Use(h.authMiddleware)
			protected.Post("/reset-password", h.resetPassword)
		})
	})

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.listInventory)
			r.Post("/", h.putInventory)
			r.Get("/low-stock", h.lowStock)
			r.Put("/{id}", h.putInventoryByID)
			r.Delete("/{id}", h.deleteInventory)
			r.Post("/{id}/receive", h.receivePurchase)
		})

		pr.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.putProduct)
			r.Put("/{id}", h.putProductByID)
			r.Delete("/{id}", h.deleteProduct)
			r.Get("/{id}/availability", h.productAvailability)
		})

		pr.Post("/checkout", h.checkout)

		pr.Route("/bills", func(r chi.Router) {
			r.Get("/", h.listBills)
			r.Get("/{id}", h.getBill)
			r.Get("/{id}/receipt", h.billReceipt)
			r.Delete("/{id}", h.deleteBill)
		})

		pr.Get("/reports/sales.csv", h.exportSalesCSV)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Authentication helpers

type authClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (h *Handler) generateToken(userID int64, role string) (string, error) {
	claims := authClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(header[len("Bearer "):])
		token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(h.secret), nil
		})
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		claims, ok := token.Claims.(*authClaims)
		if !ok {
			respondError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
		ctx = context.WithValue(ctx, ctxRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, allowed ...string) bool {
	role := r.Context().Value(ctxRole)
	if role == nil {
		respondError(w, http.StatusUnauthorized, "missing role")
		return false
	}
	current := role.(string)
	for _, allowedRole := range allowed {
		if current == allowedRole {
			return true
		}
	}
	respondError(w, http.StatusForbidden, "insufficient permissions")
	return false
}

// Auth handlers

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		respondError(w, http.StatusBadRequest, "username, email, password and role are required")
		return
	}
	if req.Role != domain.RoleOwner && req.Role != domain.RoleCashier {
		respondError(w, http.StatusBadRequest, "role must be owner or cashier")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to secure password")
		return
	}

	var userID int64
	query := h.db.Rebind(`INSERT INTO users (username, email, password, role) VALUES (?, ?, ?, ?) RETURNING id`)
	err = h.db.QueryRowx(query, req.Username, strings.ToLower(req.Email), hashed, req.Role).Scan(&userID)
	if err != nil {
		respondError(w, http.StatusConflict, "email already exists")
		return
	}

	token, err := h.generateToken(userID, req.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to generate token")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  domain.User{ID: userID, Username: req.Username, Email: strings.ToLower(req.Email), Role: req.Role},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user domain.User
	query := h.db.Rebind(`SELECT id, username, email, password, role FROM users WHERE email = ?`)
	if err := h.db.Get(&user, query, strings.ToLower(req.Email)); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.generateToken(user.ID, user.Role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to generate token")
		return
	}

	user.Password = ""
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "new_password is required")
		return
	}
	uid := r.Context().Value(ctxUserID).(int64)
	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to secure password")
		return
	}
	query := h.db.Rebind(`UPDATE users SET password = ? WHERE id = ?`)
	if _, err := h.db.Exec(query, hashed, uid); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update password")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

// Inventory handlers

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	items, err := h.inv.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	items, err := h.inv.LowStock(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) putInventory(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	var item domain.InventoryItem
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.inv.Put(r.Context(), item); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) putInventoryByID(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	var item domain.InventoryItem
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = chi.URLParam(r, "id")
	if err := h.inv.Put(r.Context(), item); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	if err := h.inv.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) receivePurchase(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	var req billing.PurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ItemID = chi.URLParam(r, "id")
	purchase, err := h.billing.ReceivePurchase(r.Context(), req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, purchase)
}

// Product handlers

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	products, err := h.products.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) putProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	var product domain.Product
	if err := decodeJSON(r, &product); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.products.Put(r.Context(), product); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *Handler) putProductByID(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	var product domain.Product
	if err := decodeJSON(r, &product); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	product.ID = chi.URLParam(r, "id")
	if err := h.products.Put(r.Context(), product); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type availabilityResponse struct {
	recipe.Availability
	Sellable bool `json:"sellable"`
}

// productAvailability recomputes the recipe check against live
// inventory on every request; results are never cached.
func (h *Handler) productAvailability(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	product, err := h.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	items, err := h.inv.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	availability := recipe.CanMake(product, items)
	respondJSON(w, http.StatusOK, availabilityResponse{
		Availability: availability,
		Sellable:     product.Available && availability.CanMake,
	})
}

// Checkout

type checkoutRequest struct {
	Lines        []domain.CartLine    `json:"lines"`
	Discount     domain.Discount      `json:"discount"`
	TaxRate      *float64             `json:"tax_rate,omitempty"`
	Method       domain.PaymentMethod `json:"payment_method"`
	Split        *domain.PaymentSplit `json:"payment_split,omitempty"`
	CustomerName string               `json:"customer_name,omitempty"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	taxRate := h.taxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	bill, err := h.billing.Checkout(r.Context(), billing.CheckoutRequest{
		Lines:        req.Lines,
		Discount:     req.Discount,
		TaxRate:      taxRate,
		Method:       req.Method,
		Split:        req.Split,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, bill)
}

// Bill handlers

func (h *Handler) listBills(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	bills, err := h.billing.ListBills(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bills)
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	bill, err := h.billing.GetBill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bill)
}

func (h *Handler) billReceipt(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner, domain.RoleCashier) {
		return
	}
	bill, err := h.billing.GetBill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(receipt.Render(bill)))
}

func (h *Handler) deleteBill(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}
	if err := h.billing.DeleteBill(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Reports

func (h *Handler) exportSalesCSV(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleOwner) {
		return
	}

	var (
		start, end time.Time
		err        error
	)
	if raw := strings.TrimSpace(r.URL.Query().Get("start_date")); raw != "" {
		if start, err = time.Parse("2006-01-02", raw); err != nil {
			respondError(w, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format")
			return
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("end_date")); raw != "" {
		if end, err = time.Parse("2006-01-02", raw); err != nil {
			respondError(w, http.StatusBadRequest, "end_date must be in YYYY-MM-DD format")
			return
		}
		end = end.AddDate(0, 0, 1)
	}

	bills, err := h.billing.ListBills(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	filtered := bills[:0]
	for _, bill := range bills {
		if !start.IsZero() && bill.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && !bill.CreatedAt.Before(end) {
			continue
		}
		filtered = append(filtered, bill)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)
	w.WriteHeader(http.StatusOK)
	_ = receipt.WriteCSV(w, filtered)
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps the core error taxonomy to HTTP statuses.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPaymentMismatch):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "unexpected error")
	}
}
