package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// resolveFileField applies the three-way multipart file contract to one field:
// an uploaded part replaces the stored file, an empty text value clears it,
// and an absent key keeps whatever is stored.
func resolveFileField(c *gin.Context, field, existing string) (string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return existing, nil
	}
	if files := form.File[field]; len(files) > 0 {
		return saveUpload(c, files[0])
	}
	if values, ok := form.Value[field]; ok && len(values) > 0 {
		if strings.TrimSpace(values[0]) == "" {
			return "", nil
		}
		return values[0], nil
	}
	return existing, nil
}

// saveUpload stores the file under the upload dir with a collision-safe name
// and returns the relative path kept in the database.
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := envConf().UploadDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(file.Filename))
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(dst), nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	name = replacer.Replace(name)
	if name == "" || name == "." {
		return "file"
	}
	if len(name) > 80 {
		name = name[len(name)-80:]
	}
	return name
}
