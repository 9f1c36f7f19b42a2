package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-core/internal/application/dto"
	"github.com/tu-usuario/inventario-core/internal/application/reports"
	"github.com/tu-usuario/inventario-core/internal/domain/repository"
	"github.com/tu-usuario/inventario-core/pkg/validator"
)

// ReportHandler maneja el historial de movimientos y su export CSV (protegido).
type ReportHandler struct {
	uc       *reports.ReportUseCase
	validate *validator.Validator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, validate *validator.Validator) *ReportHandler {
	return &ReportHandler{uc: uc, validate: validate}
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Description  Lista movimientos de stock, más recientes primero. Con format=csv
//
//	devuelve el reporte como archivo CSV.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        type        query  string  false  "ENTRY, EXIT o ADJUSTMENT"
// @Param        date_from   query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        date_to     query  string  false  "Fecha final (YYYY-MM-DD)"
// @Param        format      query  string  false  "csv para exportar"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	if err := h.validate.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	in.DefaultPage()

	filter, err := buildMovementFilter(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}

	if c.Query("format") == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
		return h.uc.ExportMovementsCSV(c.Response().BodyWriter(), filter)
	}

	movements, err := h.uc.ListMovements(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.MovementListResponse{Movements: make([]dto.MovementItem, 0, len(movements))}
	for _, m := range movements {
		out.Movements = append(out.Movements, dto.MovementItem{
			ID:          m.ID,
			ProductID:   m.ProductID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			PerformedBy: m.PerformedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	out.Total = len(out.Movements)
	return c.JSON(out)
}

// buildMovementFilter traduce los query params al filtro de repositorio.
// date_to es inclusivo: se extiende al final del día.
func buildMovementFilter(in dto.ListMovementsRequest) (repository.MovementFilter, error) {
	filter := repository.MovementFilter{
		ProductID: in.ProductID,
		Type:      in.Type,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if in.DateFrom != "" {
		from, err := time.Parse("2006-01-02", in.DateFrom)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if in.DateTo != "" {
		to, err := time.Parse("2006-01-02", in.DateTo)
		if err != nil {
			return filter, err
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &endOfDay
	}
	return filter, nil
}
