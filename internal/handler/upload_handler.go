package handler

import (
	"io"
	"net/http"

	"github.com/celulaviver/internal/media"
	"github.com/gin-gonic/gin"
)

// UploadPhoto 接收领袖照片并返回可直接保存到小组的 data URI
func (a *API) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Nenhuma imagem enviada")
		return
	}
	if file.Size > media.MaxPhotoBytes {
		handleStoreError(c, media.ErrTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Falha ao ler a imagem")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, media.MaxPhotoBytes+1))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Falha ao ler a imagem")
		return
	}

	dataURL, err := media.EncodeDataURL(data)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataUrl": dataURL})
}
