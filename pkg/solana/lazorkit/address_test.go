package lazorkit

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigAddress(t *testing.T) {
	address, bump, err := GetConfigAddress()
	require.NoError(t, err)
	assert.Equal(t, "FfvPRurLiviBJNHqFPNeZyzyEyzo5MQNGswEsDuHwrq9", base58.Encode(address))
	assert.EqualValues(t, 254, bump)
}

func TestGetSmartWalletAddress(t *testing.T) {
	address, bump, err := GetSmartWalletAddress(&GetSmartWalletAddressArgs{
		WalletId: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "3F7wj7Bx2jewNPk6nbQFa3HBSQRYA4vAW9KsR9exwrDb", base58.Encode(address))
	assert.EqualValues(t, 252, bump)
}

func TestGetWalletVaultAddress(t *testing.T) {
	address, bump, err := GetWalletVaultAddress(&GetWalletVaultAddressArgs{
		Wallet:     mustBase58Decode("3F7wj7Bx2jewNPk6nbQFa3HBSQRYA4vAW9KsR9exwrDb"),
		VaultIndex: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "4xVFFq4fM5FKh6F1WgK6Naz7Qbd8YVLqdVVH97Dq39bd", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}

func TestGetChunkAddress(t *testing.T) {
	address, bump, err := GetChunkAddress(&GetChunkAddressArgs{
		Wallet: mustBase58Decode("3F7wj7Bx2jewNPk6nbQFa3HBSQRYA4vAW9KsR9exwrDb"),
		Nonce:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "7VxsrDVm3irfHrn5LhvM2Vz5p3e9e4SMKhQmgZ4u4KWV", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}
