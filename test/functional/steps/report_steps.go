package steps

// Report step implementations
func (fc *FeatureContext) iRequestTheReportSummary() error {
	resp, err := fc.apiDriver.GetReportSummary("")
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == 200 {
		var data map[string]any
		err = fc.decodeBody(resp.Body, &data)
		fc.require.NoError(err)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) theSummaryShouldCountAtLeastHarvests(count int) error {
	harvestCount, ok := fc.responseData["harvest_count"].(float64)
	fc.require.True(ok, "harvest_count should be a number")
	fc.require.GreaterOrEqual(int(harvestCount), count)
	return nil
}

func (fc *FeatureContext) theSummaryRevenueShouldBePositive() error {
	revenue, ok := fc.responseData["total_revenue"].(float64)
	fc.require.True(ok, "total_revenue should be a number")
	fc.require.Greater(revenue, 0.0)
	return nil
}
