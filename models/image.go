package models

type ImageType string

const (
	ImageTypeFeatured ImageType = "featured"
	ImageTypeBanner   ImageType = "banner"
	ImageTypeNormal   ImageType = "normal"
)

// Image is a product picture stored on disk under the media root.
// Path is relative to the media root (e.g. "products/laptop.jpg").
type Image struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	Path      string    `gorm:"not null" json:"path"`
	Type      ImageType `gorm:"type:varchar(16);default:'normal'" json:"type"`
}
