package steps

import (
	"net/http"
)

// Upload step implementations
func (fc *FeatureContext) iUploadAJPEGPhoto() error {
	resp, err := fc.apiDriver.UploadPhoto("image/jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iUploadAGIFPhoto() error {
	resp, err := fc.apiDriver.UploadPhoto("image/gif", []byte{0x47, 0x49, 0x46, 0x38})
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheUploadURL() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["key"])
	fc.require.NotEmpty(data["url"])
	fc.uploadKey = data["key"].(string)
	return nil
}

func (fc *FeatureContext) iFetchTheUploadedPhoto() error {
	resp, err := fc.apiDriver.FetchUpload(fc.uploadKey)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)
	fc.response = resp
	return nil
}
