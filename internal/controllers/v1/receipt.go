package v1

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/metrics"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/receipt"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/transactions/{id}/receipt [options]
func OptionsTransactionReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getUserTransaction(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPostDelete(c)
}

// @Summary		Upload receipt
// @Description	Attaches a receipt file to the transaction. An existing receipt is replaced.
// @Tags			Receipts
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	TransactionResponse
// @Failure		413		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			file	formData	file	true	"Receipt file, one of png, jpg, jpeg or pdf"
// @Security		Bearer
// @Router			/v1/transactions/{id}/receipt [post]
func UploadReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	transaction, err := getUserTransaction(c, uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		s := errNoFileSent.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &s,
		})
		return
	}

	if file.Size > options.MaxUploadBytes {
		s := errFileTooLarge.Error()
		c.JSON(http.StatusRequestEntityTooLarge, TransactionResponse{
			Error: &s,
		})
		return
	}

	upload, err := file.Open()
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TransactionResponse{
			Error: &s,
		})
		return
	}
	defer upload.Close()

	data, err := io.ReadAll(upload)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TransactionResponse{
			Error: &s,
		})
		return
	}

	result, err := options.ReceiptStore.Store(data, file.Filename, transaction.UserID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	// A zero result means the file type is not allowed. Nothing was
	// written, so the transaction is untouched.
	if !result.Stored() {
		s := errReceiptFileType.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &s,
		})
		return
	}

	metrics.ReceiptsStored.Inc()

	// The new file is written before the reference moves and the old
	// file is removed last, so a failure in between never leaves the
	// transaction pointing at a missing asset
	previous := transaction.ReceiptFilename
	err = models.DB.Model(&transaction).Update("receipt_filename", result.Filename).Error
	if err != nil {
		_ = options.ReceiptStore.Delete(transaction.UserID, result.Filename)

		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	if previous != "" {
		_ = options.ReceiptStore.Delete(transaction.UserID, previous)
	}

	r := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &r})
}

// @Summary		Download receipt
// @Description	Returns the receipt file of the transaction
// @Tags			Receipts
// @Produce		application/octet-stream
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			thumbnail	query	bool	false	"Return the thumbnail instead of the original"
// @Security		Bearer
// @Router			/v1/transactions/{id}/receipt [get]
func GetReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction, err := getUserTransaction(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if transaction.ReceiptFilename == "" {
		c.JSON(http.StatusNotFound, httpError{
			Error: errNoReceipt.Error(),
		})
		return
	}

	var reader io.ReadCloser
	if c.Query("thumbnail") == "true" {
		reader, err = options.ReceiptStore.OpenThumbnail(transaction.UserID, transaction.ReceiptFilename)
	} else {
		reader, err = options.ReceiptStore.Open(transaction.UserID, transaction.ReceiptFilename)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}
	defer reader.Close()

	name := receipt.DownloadName(transaction.Description, transaction.Date, transaction.ReceiptFilename)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", contentType(transaction.ReceiptFilename))

	_, err = io.Copy(c.Writer, reader)
	if err != nil {
		// The response is already partially written, the error can
		// only be logged by the middleware via the context
		_ = c.Error(err)
	}
}

// @Summary		Delete receipt
// @Description	Removes the receipt from the transaction. Succeeds when no receipt exists.
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/transactions/{id}/receipt [delete]
func DeleteReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transaction, err := getUserTransaction(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Deleting a receipt that does not exist is a no-op
	if transaction.ReceiptFilename == "" {
		c.JSON(http.StatusNoContent, nil)
		return
	}

	filename := transaction.ReceiptFilename
	err = models.DB.Model(&transaction).Update("receipt_filename", "").Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = options.ReceiptStore.Delete(transaction.UserID, filename)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// contentType maps the stored file's extension to the Content-Type
// header for downloads.
func contentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".jpg"), strings.HasSuffix(filename, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(filename, ".pdf"):
		return "application/pdf"
	}

	return "application/octet-stream"
}
