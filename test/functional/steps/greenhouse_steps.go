package steps

import (
	"fmt"
	"net/http"
)

// Greenhouse step implementations
func (fc *FeatureContext) aGreenhouseExistsForTheProducerWithNameAndCrop(name, crop string) error {
	resp, err := fc.apiDriver.CreateGreenhouse(fc.producerID, name, crop)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.greenhouseID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iCreateAGreenhouseForTheProducerWithNameAndCrop(name, crop string) error {
	resp, err := fc.apiDriver.CreateGreenhouse(fc.producerID, name, crop)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheGreenhouseDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.greenhouseID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iListTheGreenhousesOfTheProducer() error {
	resp, err := fc.apiDriver.ListGreenhouses(fc.producerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheGreenhouseWithName(name string) error {
	greenhouses, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, greenhouse := range greenhouses {
		if greenhouse["name"] == name {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Greenhouse with name %s not found in list", name))
	return nil
}

func (fc *FeatureContext) iUpdateTheGreenhouseWithANewName(newName string) error {
	resp, err := fc.apiDriver.UpdateGreenhouse(fc.greenhouseID, newName)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iGetTheGreenhouseByItsID() error {
	resp, err := fc.apiDriver.GetGreenhouse(fc.greenhouseID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theResponseShouldContainTheGreenhouseWithName(name string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(name, data["name"])
	return nil
}

func (fc *FeatureContext) iSoftDeleteTheGreenhouse() error {
	resp, err := fc.apiDriver.SoftDeleteGreenhouse(fc.greenhouseID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}
