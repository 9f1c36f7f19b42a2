package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-core/internal/application/auth"
	"github.com/tu-usuario/inventario-core/internal/application/inventory"
	"github.com/tu-usuario/inventario-core/internal/application/reports"
	"github.com/tu-usuario/inventario-core/internal/application/usecase"
	"github.com/tu-usuario/inventario-core/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/inventario-core/internal/interfaces/http"
	"github.com/tu-usuario/inventario-core/pkg/logger"
	"github.com/tu-usuario/inventario-core/pkg/validator"
)

// buildFixtureAPI levanta la API completa sobre el backend fixture, con el
// router real y todos los middlewares.
func buildFixtureAPI() *fiber.App {
	products := memory.NewFixtureProductRepository()
	movements := memory.NewFixtureMovementRepository()
	users := memory.NewFixtureUserRepository()
	runner := memory.NewFixtureTxRunner(products, movements)

	log := logger.NewWithWriter(logger.Config{Level: "error"}, io.Discard)
	subject := inventory.NewStockSubject()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:        usecase.NewProductUseCase(products),
		RegisterMovement: inventory.NewRegisterMovementUseCase(runner, subject, log),
		ReportUC:         reports.NewReportUseCase(movements, products),
		AuthUC:           auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		Validator:        validator.New(),
		JWTSecret:        testJWTSecret,
	})
	return app
}

func postMovement(t *testing.T, app *fiber.App, token, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/movements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const fixtureMonitorID = "d1000000-0000-0000-0000-000000000001"

func TestRegisterMovement_EntradaRetorna201ConStockResultante(t *testing.T) {
	app := buildFixtureAPI()

	resp := postMovement(t, app, tokenForRole(t, "bodeguero"),
		`{"product_id":"`+fixtureMonitorID+`","type":"ENTRY","quantity":20,"reason":"Recepción pedido"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ENTRY", body["type"])
	assert.EqualValues(t, 20, body["quantity"])
	assert.EqualValues(t, 35, body["stock_quantity"], "el stock devuelto debe ser el resultante (15+20)")
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, testUserID, body["performed_by"])
}

func TestRegisterMovement_SalidaInsuficienteRetorna409(t *testing.T) {
	app := buildFixtureAPI()

	resp := postMovement(t, app, tokenForRole(t, "admin"),
		`{"product_id":"`+fixtureMonitorID+`","type":"EXIT","quantity":100,"reason":"Venta"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INSUFFICIENT_STOCK")
	assert.Contains(t, string(raw), "disponible 15", "el error debe incluir el stock disponible")
}

func TestRegisterMovement_ProductoInexistenteRetorna404(t *testing.T) {
	app := buildFixtureAPI()

	resp := postMovement(t, app, tokenForRole(t, "admin"),
		`{"product_id":"00000000-0000-0000-0000-00000000dead","type":"EXIT","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterMovement_BodyInvalidoRetorna400(t *testing.T) {
	app := buildFixtureAPI()

	cases := []struct {
		name string
		body string
	}{
		{"tipo desconocido", `{"product_id":"` + fixtureMonitorID + `","type":"ROBO","quantity":1}`},
		{"cantidad cero", `{"product_id":"` + fixtureMonitorID + `","type":"ENTRY","quantity":0}`},
		{"cantidad negativa", `{"product_id":"` + fixtureMonitorID + `","type":"EXIT","quantity":-5}`},
		{"sin product_id", `{"type":"ENTRY","quantity":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postMovement(t, app, tokenForRole(t, "admin"), tc.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRegisterMovement_VendedorRetorna403(t *testing.T) {
	app := buildFixtureAPI()

	resp := postMovement(t, app, tokenForRole(t, "vendedor"),
		`{"product_id":"`+fixtureMonitorID+`","type":"ENTRY","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"vendedor no puede registrar movimientos")
}

func TestRegisterMovement_SinTokenRetorna401(t *testing.T) {
	app := buildFixtureAPI()

	resp := postMovement(t, app, "",
		`{"product_id":"`+fixtureMonitorID+`","type":"ENTRY","quantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListMovements_JSONYFiltroPorTipo(t *testing.T) {
	app := buildFixtureAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/movements?type=ENTRY", nil)
	req.Header.Set("Authorization", tokenForRole(t, "vendedor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total     int `json:"total"`
		Movements []struct {
			Type string `json:"type"`
		} `json:"movements"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	for _, m := range body.Movements {
		assert.Equal(t, "ENTRY", m.Type)
	}
}

func TestListMovements_ExportCSV(t *testing.T) {
	app := buildFixtureAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/movements?format=csv", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "movimientos.csv")

	raw, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "ID,SKU,Producto,Tipo,Cantidad,Motivo,Usuario,Fecha", strings.TrimSpace(lines[0]))
	assert.Contains(t, string(raw), "MON-001")
}

func TestLogin_AdminDemo(t *testing.T) {
	app := buildFixtureAPI()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin", body.User.Role)

	// El token emitido debe servir para una ruta protegida.
	listReq := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	listReq.Header.Set("Authorization", "Bearer "+body.Token)
	listResp, err := app.Test(listReq, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
}

func TestLogin_PasswordIncorrectoRetorna401(t *testing.T) {
	app := buildFixtureAPI()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"incorrecta"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
