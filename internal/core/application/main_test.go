package application_test

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

func TestMain(m *testing.M) {
	wallet.ScryptN = 1 << 10
	log.SetLevel(log.WarnLevel)
	os.Exit(m.Run())
}
