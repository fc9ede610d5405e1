package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefecture(t *testing.T) {
	p, err := NewPrefecture(" 大阪府 ")
	require.NoError(t, err)
	assert.Equal(t, "大阪府", p.String())

	_, err = NewPrefecture("")
	assert.Error(t, err)
	_, err = NewPrefecture("大阪")
	assert.Error(t, err, "正式名称のみ受け付ける")
	_, err = NewPrefecture("Osaka")
	assert.Error(t, err)
}

func TestNewURL(t *testing.T) {
	u, err := NewURL("https://example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.jpg", u.String())

	empty, err := NewURL("  ")
	require.NoError(t, err, "空は未設定として許容する")
	assert.Equal(t, "", empty.String())

	_, err = NewURL("ftp://example.com/file")
	assert.Error(t, err)
	_, err = NewURL("https://")
	assert.Error(t, err)
	_, err = NewURL("not a url")
	assert.Error(t, err)
}

func TestNewYear(t *testing.T) {
	y, err := NewYear(1989)
	require.NoError(t, err)
	assert.Equal(t, 1989, y.Int())

	_, err = NewYear(0)
	assert.Error(t, err)
	_, err = NewYear(-5)
	assert.Error(t, err)
	_, err = NewYear(time.Now().Year() + 11)
	assert.Error(t, err)

	_, err = NewYear(time.Now().Year() + 5)
	assert.NoError(t, err, "竣工予定の未来年は許容する")
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(35.68, 139.76))
	assert.NoError(t, ValidateCoordinates(0, 0), "0,0 は未設定扱い")
	assert.Error(t, ValidateCoordinates(91, 139))
	assert.Error(t, ValidateCoordinates(35, 181))
	assert.Error(t, ValidateCoordinates(-91, 0.1))
}
