package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"

	"github.com/dnicolas/tienda/internal/checkout"
	"github.com/dnicolas/tienda/internal/domain"
	"github.com/dnicolas/tienda/internal/session"
	"github.com/dnicolas/tienda/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	sessions *scs.SessionManager
	registry *session.Registry
	catalog  *usecase.CatalogUC
	recs     *usecase.RecommendUC
	decoder  *schema.Decoder
}

func New(sm *scs.SessionManager, reg *session.Registry, cat *usecase.CatalogUC, recs *usecase.RecommendUC) http.Handler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dec.RegisterConverter(domain.PaymentMethod(""), func(v string) reflect.Value {
		return reflect.ValueOf(domain.PaymentMethod(v))
	})
	s := &Server{mux: http.NewServeMux(), sessions: sm, registry: reg, catalog: cat, recs: recs, decoder: dec}
	s.routes()
	return sm.LoadAndSave(Chain(s.mux,
		Logging,
		Recovery,
		RequestID,
		Gzip,
		RateLimit(120),
	))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/catalog", s.handleCatalog)
	s.mux.HandleFunc("/api/catalog/suggest", s.handleSuggest)
	s.mux.HandleFunc("/api/catalog/categories", s.handleCategories)
	s.mux.HandleFunc("/api/products/", s.handleProduct)

	s.mux.HandleFunc("/api/cart", s.handleCart)
	s.mux.HandleFunc("/api/cart/items", s.handleCartItems)
	s.mux.HandleFunc("/api/favorites/toggle", s.handleFavoriteToggle)

	s.mux.HandleFunc("/api/checkout", s.handleCheckoutStart)
	s.mux.HandleFunc("/api/checkout/phone", s.handlePhoneCheck)
	s.mux.HandleFunc("/api/checkout/details", s.handleCheckoutDetails)
	s.mux.HandleFunc("/api/checkout/edit", s.handleCheckoutEdit)
	s.mux.HandleFunc("/api/checkout/summary", s.handleCheckoutSummary)
	s.mux.HandleFunc("/api/checkout/confirm", s.handleCheckoutConfirm)

	s.mux.HandleFunc("/api/order", s.handleOrder)
	s.mux.HandleFunc("/api/order/back", s.handleOrderBack)

	s.mux.HandleFunc("/api/chat", s.handleChat)

	s.mux.HandleFunc("/api/admin/toggle", s.handleAdminToggle)
	s.mux.HandleFunc("/admin/export/xlsx", s.handleAdminExport)
	s.mux.HandleFunc("/admin/import/xlsx", s.handleAdminImport)
}

// state returns the live session state for this request, creating the
// session on first contact.
func (s *Server) state(r *http.Request) *session.State {
	sid := s.sessions.GetString(r.Context(), "sid")
	if sid == "" {
		sid = uuid.NewString()
		s.sessions.Put(r.Context(), "sid", sid)
	}
	return s.registry.Get(sid)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// --- catalog ---

type productView struct {
	domain.Product
	IsFavorite bool `json:"isFavorite"`
	InCart     int  `json:"inCart"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	qv := r.URL.Query()
	category := qv.Get("category")
	query := qv.Get("q")
	st.SetView(category, query)
	category, query = st.View()

	list := s.catalog.Browse(domain.ProductFilter{
		Category:  category,
		Query:     query,
		Favorites: st.Favorites(),
	})
	out := make([]productView, 0, len(list))
	for _, p := range list {
		out = append(out, productView{Product: p, IsFavorite: st.IsFavorite(p.ID)})
	}
	writeJSON(w, 200, map[string]any{"products": out, "category": category, "query": query})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	type suggestion struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		Category string    `json:"category"`
		ImageURL string    `json:"imageUrl"`
	}
	out := []suggestion{}
	for _, p := range s.catalog.Suggest(r.URL.Query().Get("q")) {
		out = append(out, suggestion{ID: p.ID, Name: p.Name, Category: p.Category, ImageURL: p.MainImage()})
	}
	writeJSON(w, 200, map[string]any{"suggestions": out})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	cats := append([]string{domain.CategoryAll, domain.CategoryFavorites}, s.catalog.Categories()...)
	writeJSON(w, 200, map[string]any{"categories": cats})
}

// handleProduct serves GET /api/products/{id} (detail with reviews) and
// PUT /api/products/{id} (the admin edit boundary: whole-record replace).
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	st := s.state(r)
	switch r.Method {
	case http.MethodGet:
		p, err := s.catalog.Get(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, 200, productView{Product: p, IsFavorite: st.IsFavorite(id), InCart: st.CartQuantity(id)})
	case http.MethodPut:
		if !st.IsAdmin() {
			writeJSON(w, 403, map[string]any{"error": domain.ErrNotAdmin.Error()})
			return
		}
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, 400, map[string]any{"error": "json inválido"})
			return
		}
		p.ID = id
		if err := s.catalog.Edit(r.Context(), p); err != nil {
			code := 400
			if errors.Is(err, domain.ErrNotFound) {
				code = 404
			}
			writeJSON(w, code, map[string]any{"error": err.Error()})
			return
		}
		log.Info().Str("product", id.String()).Msg("producto editado por admin")
		writeJSON(w, 200, map[string]any{"ok": true})
	default:
		http.Error(w, "method", 405)
	}
}

// --- cart ---

func (s *Server) cartPayload(st *session.State) map[string]any {
	lines, total := st.CartLines(s.catalog.Lookup())
	return map[string]any{"items": lines, "total": total, "count": st.CartSize(), "stage": st.Stage()}
}

// GET /api/cart doubles as navigating onto the cart screen, so it also
// advances the flow stage when that transition is allowed.
func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	_ = st.ViewCart()
	writeJSON(w, 200, s.cartPayload(st))
}

func (s *Server) handleCartItems(w http.ResponseWriter, r *http.Request) {
	st := s.state(r)
	var req struct {
		ProductID uuid.UUID `json:"productId"`
		Quantity  int       `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]any{"error": "json inválido"})
		return
	}
	switch r.Method {
	case http.MethodPost:
		if _, err := s.catalog.Get(req.ProductID); err != nil {
			writeJSON(w, 404, map[string]any{"error": domain.ErrNotFound.Error()})
			return
		}
		qty := req.Quantity
		if qty < 1 {
			qty = 1
		}
		st.AddItem(req.ProductID, qty)
	case http.MethodPut:
		if !st.SetQuantity(req.ProductID, req.Quantity) {
			writeJSON(w, 404, map[string]any{"error": domain.ErrNotFound.Error()})
			return
		}
	case http.MethodDelete:
		if !st.RemoveItem(req.ProductID) {
			writeJSON(w, 404, map[string]any{"error": domain.ErrNotFound.Error()})
			return
		}
	default:
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, s.cartPayload(st))
}

// --- favorites ---

func (s *Server) handleFavoriteToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ProductID uuid.UUID `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]any{"error": "json inválido"})
		return
	}
	st := s.state(r)
	fav := st.ToggleFavorite(req.ProductID)
	writeJSON(w, 200, map[string]any{"productId": req.ProductID, "isFavorite": fav})
}

// --- checkout flow ---

func (s *Server) handleCheckoutStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	if err := st.BeginCheckout(); err != nil {
		writeJSON(w, 409, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, 200, map[string]any{"stage": st.Stage(), "details": st.Details()})
}

// handlePhoneCheck is the lenient live-typing validation.
func (s *Server) handlePhoneCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	value := checkout.SanitizePhone(r.URL.Query().Get("value"))
	resp := map[string]any{"value": value, "ok": true}
	if fe := checkout.ValidatePhone(value); fe != nil {
		resp["ok"] = false
		resp["error"] = fe.Message
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleCheckoutDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, 400, map[string]any{"error": "form inválido"})
		return
	}
	var details domain.CustomerDetails
	if err := s.decoder.Decode(&details, r.PostForm); err != nil {
		writeJSON(w, 400, map[string]any{"error": "form inválido"})
		return
	}
	// numeric-only filtering happens here, at the input boundary
	details.Phone = checkout.SanitizePhone(details.Phone)

	st := s.state(r)
	fieldErrs, err := st.SubmitDetails(details)
	if err != nil {
		writeJSON(w, 409, map[string]any{"error": err.Error()})
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, 422, map[string]any{"errors": fieldErrs, "stage": st.Stage()})
		return
	}
	writeJSON(w, 200, map[string]any{"stage": st.Stage()})
}

func (s *Server) handleCheckoutEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	if err := st.EditDetails(); err != nil {
		writeJSON(w, 409, map[string]any{"error": err.Error()})
		return
	}
	// current field values are retained for the form
	writeJSON(w, 200, map[string]any{"stage": st.Stage(), "details": st.Details()})
}

// handleCheckoutSummary is the read-only confirmation view: what the order
// snapshot would record if confirmed right now.
func (s *Server) handleCheckoutSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	if st.Stage() != session.StageConfirming {
		writeJSON(w, 409, map[string]any{"error": domain.ErrInvalidTransition.Error()})
		return
	}
	lines, total := st.CartLines(s.catalog.Lookup())
	writeJSON(w, 200, map[string]any{"items": lines, "total": total, "customer": st.Details()})
}

func (s *Server) handleCheckoutConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	order, err := st.Finalize(s.catalog.Lookup())
	if err != nil {
		writeJSON(w, 409, map[string]any{"error": err.Error()})
		return
	}
	log.Info().Str("order", order.ID.String()).Float64("total", order.Total).Msg("pedido confirmado")
	writeJSON(w, 201, map[string]any{"order": order, "stage": st.Stage()})
}

// --- order ---

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	order := st.CurrentOrder()
	if order == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, 200, map[string]any{"order": order, "stage": st.Stage()})
}

func (s *Server) handleOrderBack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	if err := st.BackToStore(); err != nil {
		writeJSON(w, 409, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, 200, map[string]any{"stage": st.Stage()})
}

// --- chat ---

// handleChat passes the visitor's message plus the currently visible
// catalog to the recommender. Failures surface as the fixed apology
// message; cart and order state are never involved.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]any{"error": "json inválido"})
		return
	}
	st := s.state(r)
	category, query := st.View()
	visible := s.catalog.Browse(domain.ProductFilter{Category: category, Query: query, Favorites: st.Favorites()})
	reply := s.recs.Ask(r.Context(), req.Message, visible)
	writeJSON(w, 200, map[string]any{"reply": reply})
}

// --- admin ---

func (s *Server) handleAdminToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	st := s.state(r)
	admin := st.ToggleAdmin()
	log.Info().Bool("admin", admin).Msg("modo admin cambiado")
	writeJSON(w, 200, map[string]any{"admin": admin})
}
