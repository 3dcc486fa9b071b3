package query_test

import (
	"context"
	"errors"
	"testing"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokt-network/cw721/pkg/client/query"
	"github.com/pokt-network/cw721/testutil/mockclient"
)

func TestMeteredSmartQueryClient_QuerySmart(t *testing.T) {
	ctrl := gomock.NewController(t)
	querierMock := mockclient.NewMockSmartQueryClient(ctrl)
	querierMock.EXPECT().
		QuerySmart(gomock.Any(), testContractAddr, []byte(`{"all_tokens":{"start_after":null,"limit":null}}`)).
		Return([]byte(`{"tokens":[]}`), nil).
		Times(1)
	querierMock.EXPECT().
		QuerySmart(gomock.Any(), testContractAddr, []byte(`{"nft_info":{"token_id":"1"}}`)).
		Return(nil, errors.New("token not found")).
		Times(1)

	successBefore := smartQueriesCount(t, "all_tokens", "success")
	failureBefore := smartQueriesCount(t, "nft_info", "failure")

	meteredQuerier := query.NewMeteredSmartQueryClient(querierMock)

	res, err := meteredQuerier.QuerySmart(context.Background(), testContractAddr, []byte(`{"all_tokens":{"start_after":null,"limit":null}}`))
	require.NoError(t, err)
	require.Equal(t, []byte(`{"tokens":[]}`), res)

	_, err = meteredQuerier.QuerySmart(context.Background(), testContractAddr, []byte(`{"nft_info":{"token_id":"1"}}`))
	require.EqualError(t, err, "token not found")

	require.Equal(t, successBefore+1, smartQueriesCount(t, "all_tokens", "success"))
	require.Equal(t, failureBefore+1, smartQueriesCount(t, "nft_info", "failure"))
}

func TestMeteredSmartQueryClient_UnrecognizedVariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	querierMock := mockclient.NewMockSmartQueryClient(ctrl)
	querierMock.EXPECT().
		QuerySmart(gomock.Any(), testContractAddr, gomock.Any()).
		Return([]byte(`{}`), nil).
		Times(2)

	unknownBefore := smartQueriesCount(t, "unknown", "success")

	meteredQuerier := query.NewMeteredSmartQueryClient(querierMock)

	_, err := meteredQuerier.QuerySmart(context.Background(), testContractAddr, []byte(`{"bogus_variant":{}}`))
	require.NoError(t, err)
	_, err = meteredQuerier.QuerySmart(context.Background(), testContractAddr, []byte(`{"num_tokens":{},"minter":{}}`))
	require.NoError(t, err)

	require.Equal(t, unknownBefore+2, smartQueriesCount(t, "unknown", "success"))
	require.Zero(t, smartQueriesCount(t, "bogus_variant", "success"))
}

// smartQueriesCount returns the current value of the smart queries counter
// for the given labels, or 0 if it has not been incremented yet.
func smartQueriesCount(t *testing.T, queryVariant, status string) float64 {
	t.Helper()

	metricFamilies, err := stdprometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, metricFamily := range metricFamilies {
		if metricFamily.GetName() != "cw721_smart_queries_total" {
			continue
		}
		for _, metric := range metricFamily.GetMetric() {
			if hasLabels(metric, map[string]string{"query": queryVariant, "status": status}) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func hasLabels(metric *dto.Metric, expectedLabels map[string]string) bool {
	var numMatched int
	for _, label := range metric.GetLabel() {
		if expectedValue, ok := expectedLabels[label.GetName()]; ok && expectedValue == label.GetValue() {
			numMatched++
		}
	}
	return numMatched == len(expectedLabels)
}
