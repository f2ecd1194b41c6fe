package service

import (
	"sync"
	"testing"

	"github.com/MKhiriev/webinar-landing/models"
	"github.com/stretchr/testify/assert"
)

func TestConfigStore_CurrentAndReplace(t *testing.T) {
	initial := models.NewLandingConfig(map[string]string{models.KeyTitle: "uno"})
	store := NewConfigStore(initial)

	assert.Equal(t, "uno", store.Current().Title())

	store.Replace(models.NewLandingConfig(map[string]string{models.KeyTitle: "dos"}))
	assert.Equal(t, "dos", store.Current().Title())
}

func TestConfigStore_ZeroValueServesDefaults(t *testing.T) {
	var store ConfigStore

	assert.Equal(t, models.DefaultLandingConfig(), store.Current())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore(models.DefaultLandingConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Replace(models.DefaultLandingConfig())
		}()
		go func() {
			defer wg.Done()
			assert.NotEmpty(t, store.Current().Title())
		}()
	}
	wg.Wait()
}
