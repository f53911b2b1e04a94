package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/jortega/comercio-api/pkg/config"
)

// Uploader sube imágenes firmadas a Cloudinary. La API nunca expone las
// credenciales al cliente: el frontend manda el archivo aquí y el backend
// firma y reenvía.
type Uploader struct {
	cfg    config.CloudinaryConfig
	client *http.Client
}

// UploadResult es la respuesta relevante de Cloudinary tras subir un asset.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Bytes     int64  `json:"bytes"`
}

// NewUploader construye el cliente. Enabled() indica si hay credenciales.
func NewUploader(cfg config.CloudinaryConfig) *Uploader {
	return &Uploader{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled indica si el servicio está configurado.
func (u *Uploader) Enabled() bool {
	return u.cfg.CloudName != "" && u.cfg.APIKey != "" && u.cfg.APISecret != ""
}

// Upload sube una imagen bajo la carpeta del negocio y devuelve la URL
// servible. filename solo informa el nombre original del asset.
func (u *Uploader) Upload(ctx context.Context, businessID, filename string, file io.Reader) (*UploadResult, error) {
	if !u.Enabled() {
		return nil, fmt.Errorf("cloudinary no configurado")
	}

	folder := u.cfg.Folder + "/" + businessID
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"folder":    folder,
		"timestamp": timestamp,
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("form field %s: %w", k, err)
		}
	}
	if err := w.WriteField("api_key", u.cfg.APIKey); err != nil {
		return nil, fmt.Errorf("form field api_key: %w", err)
	}
	if err := w.WriteField("signature", sign(params, u.cfg.APISecret)); err != nil {
		return nil, fmt.Errorf("form field signature: %w", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copiar archivo: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("cerrar form: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subir a cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cloudinary respondió %d: %s", resp.StatusCode, body)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}
	return &result, nil
}

// Delete elimina un asset por su public_id (firma igual que Upload).
func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	if !u.Enabled() {
		return fmt.Errorf("cloudinary no configurado")
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", u.cfg.APIKey)
	form.Set("signature", sign(params, u.cfg.APISecret))

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/destroy", u.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("eliminar en cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("cloudinary respondió %d: %s", resp.StatusCode, body)
	}

	// Cloudinary responde 200 con {"result":"not found"} si el asset no existe.
	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("cloudinary no eliminó el asset: %s", out.Result)
	}
	return nil
}

// sign calcula la firma de Cloudinary: SHA-1 de los parámetros ordenados
// alfabéticamente en formato query, concatenados con el api_secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(secret)

	sum := sha1.Sum(b.Bytes())
	return hex.EncodeToString(sum[:])
}
