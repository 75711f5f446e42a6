package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/vytalhealth/vytal/internal/models"
)

const prescriptionFileField = "file"

type prescriptionUploadResponse struct {
	Prescriptions []models.Prescription `json:"prescriptions"`
}

// UploadPrescription sends one file as multipart form data and returns the
// simplified prescriptions in response order.
func (client *Client) UploadPrescription(ctx context.Context, filename string, content io.Reader) ([]models.Prescription, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(prescriptionFileField, filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy prescription file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	request, err := client.newRequest(ctx, http.MethodPost, pathPrescriptionUpload, &body)
	if err != nil {
		return nil, err
	}
	request.Header.Set(headerContentType, writer.FormDataContentType())

	response := prescriptionUploadResponse{}
	if err := client.do(request, &response); err != nil {
		return nil, err
	}
	if response.Prescriptions == nil {
		return []models.Prescription{}, nil
	}
	return response.Prescriptions, nil
}
