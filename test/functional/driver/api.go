package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateProducer(name, email, farmName string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"name":      name,
		"email":     email,
		"farm_name": farmName,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/producers", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetProducer(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/producers/%s", d.baseURL, id))
}

func (d *APIDriver) ListProducers() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/producers", d.baseURL))
}

func (d *APIDriver) UpdateProducer(id, newName string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"name": newName})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/producers/%s", d.baseURL, id), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) DeactivateProducer(id string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/producers/%s/deactivate", d.baseURL, id), "application/json", nil)
}

func (d *APIDriver) ActivateProducer(id string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/producers/%s/activate", d.baseURL, id), "application/json", nil)
}

func (d *APIDriver) SoftDeleteProducer(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/producers/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateGreenhouse(producerID, name, crop string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"producer_id": producerID,
		"name":        name,
		"location":    "Sector A",
		"area_m2":     250.0,
		"crop":        crop,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/greenhouses", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetGreenhouse(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/greenhouses/%s", d.baseURL, id))
}

func (d *APIDriver) ListGreenhouses(producerID string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/greenhouses", d.baseURL)
	if producerID != "" {
		url += fmt.Sprintf("?producer_id=%s", producerID)
	}
	return d.client.Get(url)
}

func (d *APIDriver) UpdateGreenhouse(id, newName string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"name": newName})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/greenhouses/%s", d.baseURL, id), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) SoftDeleteGreenhouse(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/greenhouses/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) ListChecklistTemplates() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/checklists/templates", d.baseURL))
}

func (d *APIDriver) GetChecklist(greenhouseID, templateID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/greenhouses/%s/checklists/%s", d.baseURL, greenhouseID, templateID))
}

func (d *APIDriver) SubmitChecklistItem(greenhouseID, templateID, itemID, requestBody string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/greenhouses/%s/checklists/%s/items/%s", d.baseURL, greenhouseID, templateID, itemID)
	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(requestBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) UpdateChecklistItemField(greenhouseID, templateID, itemID, fieldID, requestBody string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/greenhouses/%s/checklists/%s/items/%s/fields/%s", d.baseURL, greenhouseID, templateID, itemID, fieldID)
	req, err := http.NewRequest(http.MethodPatch, url, strings.NewReader(requestBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) LogHarvest(greenhouseID, crop string, quantityKg, unitPrice float64) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"greenhouse_id": greenhouseID,
		"crop":          crop,
		"quantity_kg":   quantityKg,
		"unit_price":    unitPrice,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/harvests", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetHarvest(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/harvests/%s", d.baseURL, id))
}

func (d *APIDriver) ListHarvests(query string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/harvests", d.baseURL)
	if query != "" {
		url += "?" + query
	}
	return d.client.Get(url)
}

func (d *APIDriver) UpdateHarvest(id string, quantityKg float64) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"quantity_kg": quantityKg})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/harvests/%s", d.baseURL, id), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) DeleteHarvest(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/harvests/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) GetReportSummary(query string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/reports/summary", d.baseURL)
	if query != "" {
		url += "?" + query
	}
	return d.client.Get(url)
}

func (d *APIDriver) UploadPhoto(contentType string, data []byte) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		panic(err)
	}
	if _, err := part.Write(data); err != nil {
		panic(err)
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}

	return d.client.Post(fmt.Sprintf("%s/v1/uploads", d.baseURL), writer.FormDataContentType(), body)
}

func (d *APIDriver) FetchUpload(key string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/uploads/%s", d.baseURL, key))
}
