package media

import (
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// CloudinaryResolver builds delivery URLs for images stored as Cloudinary
// public ids ("products/1001/main.jpg"). Site-local paths (leading "/") and
// absolute URLs go to local.
type CloudinaryResolver struct {
	cld            *cloudinary.Cloudinary
	transformation string
	local          Resolver
}

func NewCloudinaryResolver(cloudinaryURL, transformation string, local Resolver) (*CloudinaryResolver, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryResolver{cld: cld, transformation: transformation, local: local}, nil
}

func (c *CloudinaryResolver) URL(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") || isAbsolute(p) {
		return c.local.URL(p)
	}

	publicID := strings.TrimSuffix(p, path.Ext(p))
	img, err := c.cld.Image(publicID)
	if err != nil {
		return c.local.URL(p)
	}
	img.Transformation = c.transformation

	u, err := img.String()
	if err != nil {
		return c.local.URL(p)
	}
	return u
}
