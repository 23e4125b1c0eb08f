package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"greenhouse-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the list envelope the API replies with
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	producerID       string
	greenhouseID     string
	harvestID        string
	uploadKey        string
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Producer steps
	ctx.When(`^I create a new producer with name "([^"]*)" and email "([^"]*)"$`, fc.iCreateANewProducerWithNameAndEmail)
	ctx.Given(`^a producer exists with name "([^"]*)" and email "([^"]*)"$`, fc.aProducerExistsWithNameAndEmail)
	ctx.When(`^I get the producer by its ID$`, fc.iGetTheProducerByItsID)
	ctx.Then(`^the response should contain the producer details$`, fc.theResponseShouldContainTheProducerDetails)
	ctx.Then(`^the response should contain the producer with name "([^"]*)"$`, fc.theResponseShouldContainTheProducerWithName)
	ctx.When(`^I list all producers$`, fc.iListAllProducers)
	ctx.Then(`^the list should contain the producer with name "([^"]*)"$`, fc.theListShouldContainTheProducerWithName)
	ctx.When(`^I update the producer with a new name "([^"]*)"$`, fc.iUpdateTheProducerWithANewName)
	ctx.When(`^I deactivate the producer$`, fc.iDeactivateTheProducer)
	ctx.When(`^I activate the producer$`, fc.iActivateTheProducer)
	ctx.When(`^I soft delete the producer$`, fc.iSoftDeleteTheProducer)
	ctx.Then(`^the producer should be soft deleted$`, fc.theProducerShouldBeSoftDeleted)

	// Greenhouse steps
	ctx.Given(`^a greenhouse exists for the producer with name "([^"]*)" and crop "([^"]*)"$`, fc.aGreenhouseExistsForTheProducerWithNameAndCrop)
	ctx.When(`^I create a greenhouse for the producer with name "([^"]*)" and crop "([^"]*)"$`, fc.iCreateAGreenhouseForTheProducerWithNameAndCrop)
	ctx.Then(`^the response should contain the greenhouse details$`, fc.theResponseShouldContainTheGreenhouseDetails)
	ctx.When(`^I list the greenhouses of the producer$`, fc.iListTheGreenhousesOfTheProducer)
	ctx.Then(`^the list should contain the greenhouse with name "([^"]*)"$`, fc.theListShouldContainTheGreenhouseWithName)
	ctx.When(`^I update the greenhouse with a new name "([^"]*)"$`, fc.iUpdateTheGreenhouseWithANewName)
	ctx.When(`^I get the greenhouse by its ID$`, fc.iGetTheGreenhouseByItsID)
	ctx.Then(`^the response should contain the greenhouse with name "([^"]*)"$`, fc.theResponseShouldContainTheGreenhouseWithName)
	ctx.When(`^I soft delete the greenhouse$`, fc.iSoftDeleteTheGreenhouse)

	// Checklist steps
	ctx.When(`^I list the checklist templates$`, fc.iListTheChecklistTemplates)
	ctx.Then(`^the list should contain the template "([^"]*)"$`, fc.theListShouldContainTheTemplate)
	ctx.When(`^I get the "([^"]*)" checklist for the greenhouse$`, fc.iGetTheChecklistForTheGreenhouse)
	ctx.Then(`^the checklist item "([^"]*)" should not be completed$`, fc.theChecklistItemShouldNotBeCompleted)
	ctx.Then(`^the checklist item "([^"]*)" should be completed$`, fc.theChecklistItemShouldBeCompleted)
	ctx.When(`^I submit the "([^"]*)" item of the "([^"]*)" checklist with:$`, fc.iSubmitTheItemOfTheChecklistWith)
	ctx.When(`^I patch the "([^"]*)" field of the "([^"]*)" item of the "([^"]*)" checklist with:$`, fc.iPatchTheFieldOfTheItemOfTheChecklistWith)
	ctx.Then(`^the response should contain validation warnings$`, fc.theResponseShouldContainValidationWarnings)
	ctx.Then(`^the response should contain no validation warnings$`, fc.theResponseShouldContainNoValidationWarnings)

	// Harvest steps
	ctx.Given(`^a harvest of (\d+(?:\.\d+)?)kg of "([^"]*)" at (\d+(?:\.\d+)?) per kg exists for the greenhouse$`, fc.aHarvestExistsForTheGreenhouse)
	ctx.When(`^I log a harvest of (\d+(?:\.\d+)?)kg of "([^"]*)" at (\d+(?:\.\d+)?) per kg for the greenhouse$`, fc.iLogAHarvestForTheGreenhouse)
	ctx.Then(`^the response should contain the harvest details$`, fc.theResponseShouldContainTheHarvestDetails)
	ctx.Then(`^the harvest total value should be (\d+(?:\.\d+)?)$`, fc.theHarvestTotalValueShouldBe)
	ctx.When(`^I list the harvests of the greenhouse$`, fc.iListTheHarvestsOfTheGreenhouse)
	ctx.Then(`^the list should contain the harvest$`, fc.theListShouldContainTheHarvest)
	ctx.When(`^I update the harvest quantity to (\d+(?:\.\d+)?)kg$`, fc.iUpdateTheHarvestQuantityTo)
	ctx.When(`^I delete the harvest$`, fc.iDeleteTheHarvest)
	ctx.When(`^I try to get the harvest by its ID$`, fc.iTryToGetTheHarvestByItsID)

	// Report steps
	ctx.When(`^I request the report summary$`, fc.iRequestTheReportSummary)
	ctx.Then(`^the summary should count at least (\d+) harvests?$`, fc.theSummaryShouldCountAtLeastHarvests)
	ctx.Then(`^the summary revenue should be positive$`, fc.theSummaryRevenueShouldBePositive)

	// Upload steps
	ctx.When(`^I upload a JPEG photo$`, fc.iUploadAJPEGPhoto)
	ctx.When(`^I upload a GIF photo$`, fc.iUploadAGIFPhoto)
	ctx.Then(`^the response should contain the upload URL$`, fc.theResponseShouldContainTheUploadURL)
	ctx.When(`^I fetch the uploaded photo$`, fc.iFetchTheUploadedPhoto)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.producerID = ""
	fc.greenhouseID = ""
	fc.harvestID = ""
	fc.uploadKey = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}
