package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dormlife-art-generator/internal/adapters/secondary/filesystem"
	"dormlife-art-generator/internal/adapters/secondary/sdwebui"
	"dormlife-art-generator/internal/config"
	"dormlife-art-generator/internal/core/domain"
)

// setupTxt2ImgServer fakes the txt2img endpoint. Calls listed in failOn
// (1-based) answer 503; every other call returns a one-image payload.
func setupTxt2ImgServer(t *testing.T, failOn ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fail := map[int]bool{}
	for _, n := range failOn {
		fail[n] = true
	}

	calls := new(atomic.Int32)
	r := gin.New()
	r.POST("/sdapi/v1/txt2img", func(c *gin.Context) {
		n := int(calls.Add(1))
		var req domain.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		if fail[n] {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "busy"})
			return
		}
		payload := fmt.Sprintf("png:%d:%s", n, req.Prompt)
		c.JSON(http.StatusOK, gin.H{"images": []string{base64.StdEncoding.EncodeToString([]byte(payload))}})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, calls
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestBatch_EndToEnd_SingleThemeSingleItem(t *testing.T) {
	srv, _ := setupTxt2ImgServer(t)
	out := t.TempDir()

	vol := domain.Volume{
		Label:        "X",
		Collection:   "X Collection",
		CollectionID: "X",
		Themes:       []domain.Theme{{Name: "Solo", Prompt: "one student"}},
		PromptSuffix: "digital art",
		Creator:      "Studio",
	}
	svc := NewBatchService(
		sdwebui.NewClient(&config.Txt2ImgConfig{URL: srv.URL}),
		filesystem.NewStore(out),
		vol,
		domain.DefaultSamplingParams(),
	)

	_, err := svc.Run(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"X_001.png"}, listDir(t, filepath.Join(out, "images")))
	assert.Equal(t, []string{"X_001.json"}, listDir(t, filepath.Join(out, "metadata")))

	img, err := os.ReadFile(filepath.Join(out, "images", "X_001.png"))
	require.NoError(t, err)
	assert.Equal(t, "png:1:one student, digital art", string(img))

	raw, err := os.ReadFile(filepath.Join(out, "metadata", "X_001.json"))
	require.NoError(t, err)
	var meta domain.ArtifactMetadata
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "Solo", meta.Theme)
	assert.Equal(t, "X Collection #001", meta.Name)
}

func TestBatch_EndToEnd_Vol2PairsMatch(t *testing.T) {
	srv, calls := setupTxt2ImgServer(t)
	out := t.TempDir()

	vol, err := domain.LookupVolume("Vol2")
	require.NoError(t, err)
	svc := NewBatchService(
		sdwebui.NewClient(&config.Txt2ImgConfig{URL: srv.URL}),
		filesystem.NewStore(out),
		vol,
		domain.DefaultSamplingParams(),
	)

	const total = 13
	report, err := svc.Run(context.Background(), total)
	require.NoError(t, err)
	assert.Equal(t, int32(total), calls.Load())
	assert.Len(t, report.Artifacts, total)

	images := listDir(t, filepath.Join(out, "images"))
	metas := listDir(t, filepath.Join(out, "metadata"))
	require.Len(t, images, total)
	require.Len(t, metas, total)

	for i := 1; i <= total; i++ {
		name := fmt.Sprintf("DormLife_Vol2_%03d", i)
		assert.Equal(t, name+".png", images[i-1])
		assert.Equal(t, name+".json", metas[i-1])

		raw, err := os.ReadFile(filepath.Join(out, "metadata", name+".json"))
		require.NoError(t, err)
		var meta domain.ArtifactMetadata
		require.NoError(t, json.Unmarshal(raw, &meta))

		assert.Equal(t, vol.Themes[(i-1)%len(vol.Themes)].Name, meta.Theme)
		assert.Equal(t, "Dorm Life Vol2", meta.Collection)
		assert.Contains(t, []int{1, 3, 10}, meta.LotteryTickets)
		assert.Equal(t, meta.Rarity.Tickets(), meta.LotteryTickets)
	}
}

func TestBatch_EndToEnd_FailureOnThirdOfFive(t *testing.T) {
	srv, calls := setupTxt2ImgServer(t, 3)
	out := t.TempDir()

	vol, err := domain.LookupVolume("Vol2")
	require.NoError(t, err)
	svc := NewBatchService(
		sdwebui.NewClient(&config.Txt2ImgConfig{URL: srv.URL}),
		filesystem.NewStore(out),
		vol,
		domain.DefaultSamplingParams(),
	)

	report, err := svc.Run(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamStatus)
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, report.Artifacts, 2)

	assert.Equal(t, []string{"DormLife_Vol2_001.png", "DormLife_Vol2_002.png"}, listDir(t, filepath.Join(out, "images")))
	assert.Equal(t, []string{"DormLife_Vol2_001.json", "DormLife_Vol2_002.json"}, listDir(t, filepath.Join(out, "metadata")))
}
