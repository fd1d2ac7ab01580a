package nodeclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nem2-wallet/walletcore/pkg/nodeclient"
)

const (
	nodeInfoJSON = `{
		"version": 16777728,
		"publicKey": "2AF52C5AB32FB4E5A6F7E8C9F4E7E5E0A4E1F7F8F9A0B1C2D3E4F5A6B7C8D9E0",
		"networkGenerationHashSeed": "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6",
		"roles": 3,
		"port": 7900,
		"networkIdentifier": 104,
		"host": "node.example.com",
		"friendlyName": "example"
	}`
	networkPropertiesJSON = `{
		"network": {
			"identifier": "mainnet",
			"generationHashSeed": "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6",
			"epochAdjustment": "1615853185s"
		},
		"chain": {
			"currencyMosaicId": "0x6BED'913F'A202'23F8",
			"harvestingMosaicId": "0x6BED'913F'A202'23F8",
			"blockGenerationTargetTime": "30s",
			"maxMosaicDivisibility": "6"
		},
		"plugins": {
			"namespace": {"maxNamespaceDuration": "1825d"}
		}
	}`
	feesJSON = `{
		"averageFeeMultiplier": 100,
		"medianFeeMultiplier": 25,
		"highestFeeMultiplier": 1000,
		"lowestFeeMultiplier": 0,
		"minFeeMultiplier": 10
	}`
	chainInfoJSON = `{"height": "1234567", "scoreHigh": "0", "scoreLow": "0"}`
)

func newTestNode(t *testing.T) *httptest.Server {
	routes := map[string]string{
		"/node/info":                nodeInfoJSON,
		"/network/properties":       networkPropertiesJSON,
		"/network/fees/transaction": feesJSON,
		"/chain/info":               chainInfoJSON,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, `{"code":"ResourceNotFound"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetNetworkSnapshot(t *testing.T) {
	srv := newTestNode(t)
	client, err := nodeclient.NewClient(srv.URL+"/", nodeclient.WithRequestsPerSecond(100))
	require.NoError(t, err)
	require.Equal(t, srv.URL, client.URL())

	snapshot, err := client.GetNetworkSnapshot(context.Background())
	require.NoError(t, err)

	require.Equal(t, 104, snapshot.NodeInfo.GetNetworkIdentifier())
	require.Equal(t, "node.example.com", snapshot.NodeInfo.GetHost())
	require.Equal(t, 7900, snapshot.NodeInfo.GetPort())
	require.Equal(
		t, "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6",
		snapshot.NodeInfo.GetGenerationHash(),
	)

	props := snapshot.NetworkProperties
	require.Equal(t, int64(1615853185), props.GetEpochAdjustment())
	require.Equal(t, "6BED913FA20223F8", props.GetCurrencyMosaicID())
	require.Equal(t, 6, props.GetMaxMosaicDivisibility())
	require.Equal(t, "30s", props.GetBlockGenerationTargetTime())
	require.Equal(t, "1825d", props.GetMaxNamespaceDuration())

	require.Equal(t, uint64(25), snapshot.TransactionFees.GetMedianFeeMultiplier())
	require.Equal(t, uint64(1234567), snapshot.ChainHeight)
}

func TestFailingClient(t *testing.T) {
	_, err := nodeclient.NewClient("  ")
	require.Equal(t, nodeclient.ErrNullURL, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := nodeclient.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.GetChainHeight(context.Background())
	require.ErrorIs(t, err, nodeclient.ErrUnexpectedStatus)

	_, err = client.GetNetworkSnapshot(context.Background())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.GetNodeInfo(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
