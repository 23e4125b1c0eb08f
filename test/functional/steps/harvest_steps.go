package steps

import (
	"fmt"
	"net/http"
)

// Harvest step implementations
func (fc *FeatureContext) aHarvestExistsForTheGreenhouse(quantityKg float64, crop string, unitPrice float64) error {
	resp, err := fc.apiDriver.LogHarvest(fc.greenhouseID, crop, quantityKg, unitPrice)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.harvestID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iLogAHarvestForTheGreenhouse(quantityKg float64, crop string, unitPrice float64) error {
	resp, err := fc.apiDriver.LogHarvest(fc.greenhouseID, crop, quantityKg, unitPrice)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheHarvestDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.harvestID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theHarvestTotalValueShouldBe(expected float64) error {
	totalValue, ok := fc.responseData["total_value"].(float64)
	fc.require.True(ok, "total_value should be a number")
	fc.require.InDelta(expected, totalValue, 0.001)
	return nil
}

func (fc *FeatureContext) iListTheHarvestsOfTheGreenhouse() error {
	resp, err := fc.apiDriver.ListHarvests(fmt.Sprintf("greenhouse_id=%s", fc.greenhouseID))
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheHarvest() error {
	harvests, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, harvest := range harvests {
		if harvest["id"] == fc.harvestID {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Harvest %s not found in list", fc.harvestID))
	return nil
}

func (fc *FeatureContext) iUpdateTheHarvestQuantityTo(quantityKg float64) error {
	resp, err := fc.apiDriver.UpdateHarvest(fc.harvestID, quantityKg)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusOK {
		var data map[string]any
		err = fc.decodeBody(resp.Body, &data)
		fc.require.NoError(err)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iDeleteTheHarvest() error {
	resp, err := fc.apiDriver.DeleteHarvest(fc.harvestID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) iTryToGetTheHarvestByItsID() error {
	resp, err := fc.apiDriver.GetHarvest(fc.harvestID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}
