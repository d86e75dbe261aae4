// Package v1 implements the v1 API of the backend.
package v1

import (
	"github.com/pocketledger/backend/internal/receipt"
)

// Options carries the collaborators the controllers need. They are set
// once at startup, analogous to the database connection.
type Options struct {
	// ReceiptStore manages receipt assets on the filesystem.
	ReceiptStore *receipt.Store

	// MaxUploadBytes limits the size of uploaded receipt files.
	MaxUploadBytes int64
}

var options Options

// Configure sets the collaborators for the v1 controllers.
func Configure(o Options) {
	options = o
}
