package region

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/platform"
)

func TestCountryRegion(t *testing.T) {
	t.Run("apac", func(t *testing.T) {
		label, ok := CountryRegion("jp")
		assert.True(t, ok)
		assert.Equal(t, Apac, label)
	})

	t.Run("emea", func(t *testing.T) {
		label, ok := CountryRegion("no")
		assert.True(t, ok)
		assert.Equal(t, Emea, label)
	})

	t.Run("eu", func(t *testing.T) {
		label, ok := CountryRegion("fr")
		assert.True(t, ok)
		assert.Equal(t, Eu, label)
	})

	t.Run("case insensitive", func(t *testing.T) {
		label, ok := CountryRegion("JP")
		assert.True(t, ok)
		assert.Equal(t, Apac, label)
	})

	t.Run("americas absent", func(t *testing.T) {
		_, ok := CountryRegion("us")
		assert.False(t, ok)
		_, ok = CountryRegion("br")
		assert.False(t, ok)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := CountryRegion("xx")
		assert.False(t, ok)
	})
}

func TestDeviceRegion(t *testing.T) {
	log := logging.NewNop()

	t.Run("plain code", func(t *testing.T) {
		stats := platform.MapStatistics{platform.RegionKey: "jp"}
		assert.Equal(t, "jp", DeviceRegion(stats, log))
	})

	t.Run("complex code keeps first segment", func(t *testing.T) {
		stats := platform.MapStatistics{platform.RegionKey: "ca.ansi"}
		assert.Equal(t, "ca", DeviceRegion(stats, log))
	})

	t.Run("uppercase lowered", func(t *testing.T) {
		stats := platform.MapStatistics{platform.RegionKey: "DE"}
		assert.Equal(t, "de", DeviceRegion(stats, log))
	})

	t.Run("missing key defaults to us", func(t *testing.T) {
		assert.Equal(t, "us", DeviceRegion(platform.MapStatistics{}, log))
	})

	t.Run("empty value defaults to us", func(t *testing.T) {
		stats := platform.MapStatistics{platform.RegionKey: " "}
		assert.Equal(t, "us", DeviceRegion(stats, log))
	})
}

func TestLookupOrder(t *testing.T) {
	t.Run("known region gets broad label", func(t *testing.T) {
		assert.Equal(t, []string{"ja-jp", "apac", "en-us"}, LookupOrder("ja", "jp"))
	})

	t.Run("regional locale uses base language", func(t *testing.T) {
		assert.Equal(t, []string{"de-ch", "emea", "en-us"}, LookupOrder("de-DE", "ch"))
	})

	t.Run("unknown region skips broad label", func(t *testing.T) {
		assert.Equal(t, []string{"en-xx", "en-us"}, LookupOrder("en", "xx"))
	})

	t.Run("united states has no broad label", func(t *testing.T) {
		assert.Equal(t, []string{"en-us", "en-us"}, LookupOrder("en-US", "us"))
	})

	t.Run("unparseable locale keeps first segment", func(t *testing.T) {
		assert.Equal(t, []string{"zz!-jp", "apac", "en-us"}, LookupOrder("ZZ!", "jp"))
	})
}
