package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/application/ledger"
	"github.com/jackel7/stock-mate/internal/application/usecase"
)

// TransactionHandler handles transaction submission and read views.
type TransactionHandler struct {
	submit *ledger.SubmitTransactionUseCase
	query  *usecase.TransactionQueryUseCase
}

// NewTransactionHandler builds the handler.
func NewTransactionHandler(submit *ledger.SubmitTransactionUseCase, query *usecase.TransactionQueryUseCase) *TransactionHandler {
	return &TransactionHandler{submit: submit, query: query}
}

// Submit godoc
// @Summary      Submit a transaction (IN, OUT or ADJ) with line items
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitTransactionRequest  true  "type, items [{product_id, quantity, unit_price}], optional transaction_date"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	header, err := h.submit.Submit(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(header)
}

// List godoc
// @Summary      List transaction headers, newest first
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   dto.TransactionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	list, err := h.query.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetDetail godoc
// @Summary      Fetch a transaction with its items and product name/sku
// @Tags         transactions
// @Produce      json
// @Param        id   path      string  true  "transaction id"
// @Success      200  {object}  dto.TransactionDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetDetail(c *fiber.Ctx) error {
	detail, err := h.query.GetDetail(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}
