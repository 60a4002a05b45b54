package uploads

const (
	FolderCategories = "categories"
	FolderProducts   = "products"

	// MaxImageBytes is the largest accepted upload, 5 MiB.
	MaxImageBytes = 5 << 20
)

var allowedExtensions = []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url" example:"https://res.cloudinary.com/demo/image/upload/products/1700000000000_baklava.png"`
	Key string `json:"key" example:"products/1700000000000_baklava.png"`
}
