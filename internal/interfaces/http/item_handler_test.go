package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorder-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Catálogo de items vía API: permisos, coerción y códigos de error.
// ─────────────────────────────────────────────────────────────────────────────

type itemBody struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Unit        string  `json:"unit"`
	Cost        string  `json:"cost"`
	InStock     int     `json:"in_stock"`
	Active      bool    `json:"active"`
}

func seedItem(repo *memItemRepo, sku, name string, active bool) {
	repo.items = append(repo.items, &entity.Item{
		ID:      "0b7a4b1e-2222-4ccc-9ddd-00000000000" + sku[len(sku)-1:],
		SKU:     sku,
		Name:    name,
		Unit:    "pcs",
		Cost:    decimal.RequireFromString("1.00"),
		InStock: 5,
		Active:  active,
	})
}

func TestListItems_AnonimoRecibe401(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListItems_CualquierRolConFiltroActive(t *testing.T) {
	app, repo := buildAPIApp(t)
	seedItem(repo, "SKU-001", "Blue Pen", true)
	seedItem(repo, "SKU-002", "Notebook A5", true)
	seedItem(repo, "SKU-003", "Packing Tape", false)

	cookie := login(t, app, "employee@demo.local")

	list := func(target string) []itemBody {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Items []itemBody `json:"items"`
		}
		decodeBody(t, resp, &body)
		return body.Items
	}

	all := list("/api/items")
	require.Len(t, all, 3)
	// Ordenado por name ascendente.
	assert.Equal(t, "Blue Pen", all[0].Name)
	// El listado serializa cost con la misma escala fija que el create.
	assert.Equal(t, "1.00", all[0].Cost)
	assert.Equal(t, "Notebook A5", all[1].Name)
	assert.Equal(t, "Packing Tape", all[2].Name)

	active := list("/api/items?active=true")
	require.Len(t, active, 2)

	inactive := list("/api/items?active=false")
	require.Len(t, inactive, 1)
	assert.Equal(t, "SKU-003", inactive[0].SKU)
}

func TestCreateItem_AnonimoRecibe401(t *testing.T) {
	app, _ := buildAPIApp(t)

	req := jsonRequest(http.MethodPost, "/api/items", `{"sku":"SKU-100"}`)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateItem_EmployeeRecibe403(t *testing.T) {
	app, repo := buildAPIApp(t)
	cookie := login(t, app, "employee@demo.local")

	req := jsonRequest(http.MethodPost, "/api/items",
		`{"sku":"SKU-100","name":"Widget","unit":"pcs","cost":"2.5","in_stock":"10"}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, repo.items)
}

func TestCreateItem_ManagerConCoercion(t *testing.T) {
	app, _ := buildAPIApp(t)
	cookie := login(t, app, "manager@demo.local")

	// cost e in_stock llegan como strings numéricos; active omitido.
	req := jsonRequest(http.MethodPost, "/api/items",
		`{"sku":"SKU-100","name":"Widget","unit":"pcs","cost":"2.5","in_stock":"10"}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Item itemBody `json:"item"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "SKU-100", body.Item.SKU)
	// cost serializa como string con exactamente 2 decimales.
	assert.Equal(t, "2.50", body.Item.Cost)
	assert.Equal(t, 10, body.Item.InStock)
	assert.True(t, body.Item.Active)
	assert.NotEmpty(t, body.Item.ID)
}

func TestCreateItem_CostComoNumeroJSON(t *testing.T) {
	app, _ := buildAPIApp(t)
	cookie := login(t, app, "manager@demo.local")

	req := jsonRequest(http.MethodPost, "/api/items",
		`{"sku":"SKU-101","name":"Gadget","unit":"pcs","cost":3.1,"in_stock":4}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Item itemBody `json:"item"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "3.10", body.Item.Cost)
	assert.Equal(t, 4, body.Item.InStock)
}

func TestCreateItem_SKUDuplicadoRecibe409(t *testing.T) {
	app, repo := buildAPIApp(t)
	seedItem(repo, "SKU-001", "Blue Pen", true)
	cookie := login(t, app, "manager@demo.local")

	req := jsonRequest(http.MethodPost, "/api/items",
		`{"sku":"SKU-001","name":"Otro","unit":"pcs","cost":"1","in_stock":"1"}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateItem_ValidacionConDetallePorCampo(t *testing.T) {
	app, _ := buildAPIApp(t)
	cookie := login(t, app, "manager@demo.local")

	req := jsonRequest(http.MethodPost, "/api/items",
		`{"sku":"SKU-102","name":"Widget","unit":"pcs","cost":"-1","in_stock":"10"}`)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Details, "cost")
}

func TestDeleteItem_EmployeeRecibe403(t *testing.T) {
	app, repo := buildAPIApp(t)
	seedItem(repo, "SKU-001", "Blue Pen", true)
	cookie := login(t, app, "employee@demo.local")

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+repo.items[0].ID, nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Len(t, repo.items, 1)
}

func TestDeleteItem_IDInvalidoRecibe400(t *testing.T) {
	app, _ := buildAPIApp(t)
	cookie := login(t, app, "manager@demo.local")

	req := httptest.NewRequest(http.MethodDelete, "/api/items/no-es-un-uuid", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Details map[string][]string `json:"details"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Details, "id")
}

func TestDeleteItem_InexistenteRecibe404(t *testing.T) {
	app, _ := buildAPIApp(t)
	cookie := login(t, app, "manager@demo.local")

	req := httptest.NewRequest(http.MethodDelete, "/api/items/0b7a4b1e-9999-4ccc-9ddd-000000000099", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteItem_OK(t *testing.T) {
	app, repo := buildAPIApp(t)
	seedItem(repo, "SKU-001", "Blue Pen", true)
	cookie := login(t, app, "manager@demo.local")
	id := repo.items[0].ID

	req := httptest.NewRequest(http.MethodDelete, "/api/items/"+id, nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Deleted struct {
			ID   string `json:"id"`
			SKU  string `json:"sku"`
			Name string `json:"name"`
		} `json:"deleted"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, id, body.Deleted.ID)
	assert.Equal(t, "SKU-001", body.Deleted.SKU)
	assert.Equal(t, "Blue Pen", body.Deleted.Name)
	assert.Empty(t, repo.items)
}
