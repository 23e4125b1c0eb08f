package steps

import (
	"fmt"
	"net/http"
)

// Producer step implementations
func (fc *FeatureContext) iCreateANewProducerWithNameAndEmail(name, email string) error {
	resp, err := fc.apiDriver.CreateProducer(name, email, "Sitio Boa Vista")
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aProducerExistsWithNameAndEmail(name, email string) error {
	resp, err := fc.apiDriver.CreateProducer(name, email, "Sitio Boa Vista")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.producerID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iGetTheProducerByItsID() error {
	resp, err := fc.apiDriver.GetProducer(fc.producerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theResponseShouldContainTheProducerDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.producerID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheProducerWithName(name string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(name, data["name"])
	return nil
}

func (fc *FeatureContext) iListAllProducers() error {
	resp, err := fc.apiDriver.ListProducers()
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheProducerWithName(name string) error {
	producers, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, producer := range producers {
		if producer["name"] == name {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Producer with name %s not found in list", name))
	return nil
}

func (fc *FeatureContext) iUpdateTheProducerWithANewName(newName string) error {
	resp, err := fc.apiDriver.UpdateProducer(fc.producerID, newName)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iDeactivateTheProducer() error {
	resp, err := fc.apiDriver.DeactivateProducer(fc.producerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iActivateTheProducer() error {
	resp, err := fc.apiDriver.ActivateProducer(fc.producerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iSoftDeleteTheProducer() error {
	resp, err := fc.apiDriver.SoftDeleteProducer(fc.producerID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theProducerShouldBeSoftDeleted() error {
	resp, err := fc.apiDriver.GetProducer(fc.producerID)
	fc.require.NoError(err)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["deleted_at"], "Producer should carry a deletion timestamp")
	return nil
}
