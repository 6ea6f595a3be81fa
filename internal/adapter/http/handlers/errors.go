package handlers

import (
	"errors"
	"net/http"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"
	"omis_backend/pkg"
)

// mapOrderError translates engine errors into the shared AppError shape.
// Validation failures are 400, state and uniqueness conflicts 409, missing
// aggregates 404, everything else an opaque 500.
func mapOrderError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	var conflictErr *entities.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &conflictErr):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", conflictErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPublicToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAllocationExhausted):
		return pkg.NewDomainError("ALLOCATION_EXHAUSTED", "Could not allocate a unique reference", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
