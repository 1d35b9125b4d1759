package handler

import (
	"errors"
	"net/http"

	"github.com/celulaviver/internal/contact"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/media"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func handleStoreError(c *gin.Context, err error) {
	var visitorErr *store.VisitorError
	var inputErr *store.InputError
	var dupErr *store.DuplicateReportError

	switch {
	case errors.As(err, &dupErr):
		respondError(c, http.StatusConflict, "Já existe um relatório cadastrado para esta célula na data "+locale.FormatISODate(dupErr.Date)+".")
	case errors.As(err, &visitorErr):
		respondError(c, http.StatusBadRequest, visitorErr.Error())
	case errors.As(err, &inputErr):
		respondError(c, http.StatusBadRequest, "Campo inválido: "+inputErr.Field)
	case errors.Is(err, store.ErrInvalidNotice):
		respondError(c, http.StatusBadRequest, "Preencha o título e a mensagem.")
	case errors.Is(err, store.ErrCellNotFound):
		respondError(c, http.StatusNotFound, "Célula não encontrada")
	case errors.Is(err, store.ErrReportNotFound):
		respondError(c, http.StatusNotFound, "Relatório não encontrado")
	case errors.Is(err, store.ErrGoalNotFound):
		respondError(c, http.StatusNotFound, "Meta não encontrada")
	case errors.Is(err, store.ErrNotificationNotFound):
		respondError(c, http.StatusNotFound, "Notificação não encontrada")
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "Registro não encontrado")
	case errors.Is(err, contact.ErrMissingPhone):
		respondError(c, http.StatusBadRequest, "Telefone não cadastrado.")
	case errors.Is(err, media.ErrTooLarge):
		respondError(c, http.StatusRequestEntityTooLarge, "Imagem muito grande")
	case errors.Is(err, media.ErrInvalidDataURL), errors.Is(err, media.ErrUnsupportedType):
		respondError(c, http.StatusBadRequest, "Formato de imagem não suportado")
	default:
		respondError(c, http.StatusInternalServerError, "Operação falhou")
	}
}
