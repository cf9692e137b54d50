package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"style-shop/config"
)

const maxImageSize = 5 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUploadedImage writes an uploaded image to the local upload directory
// and returns its path. Callers that push to Cloudinary remove it afterwards.
func SaveUploadedImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxImageSize {
		return "", errors.New("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	}

	uploadDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullPath := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(fileHeader, fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}

func RemoveLocalFile(path string) {
	if path != "" {
		os.Remove(path)
	}
}
