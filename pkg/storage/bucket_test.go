package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketConfig_ObjectName(t *testing.T) {
	assert.Equal(t, "inspiration/a.png", BucketConfig{}.objectName("/inspiration/a.png"))
	assert.Equal(t, "vyronex/inspiration/a.png", BucketConfig{Prefix: "/vyronex/"}.objectName("inspiration/a.png"))
}

func TestBucketConfig_PublicURL(t *testing.T) {
	cfg := BucketConfig{Bucket: "leads"}
	assert.Equal(t, "https://leads.s3.ap-south-1.amazonaws.com/vyronex/a.png", cfg.publicURL("leads.s3.ap-south-1.amazonaws.com", "vyronex/a.png"))

	cfg.CDNDomain = "cdn.vyronexmotors.com"
	assert.Equal(t, "https://cdn.vyronexmotors.com/vyronex/a.png", cfg.publicURL("leads.s3.ap-south-1.amazonaws.com", "vyronex/a.png"))
}

func TestBucketConfig_RequiresBucket(t *testing.T) {
	assert.Error(t, BucketConfig{}.validate())
	assert.NoError(t, BucketConfig{Bucket: "leads"}.validate())
}

func TestGCPStorage_URL(t *testing.T) {
	g := &GCPStorage{config: GCSConfig{BucketConfig: BucketConfig{Bucket: "leads"}}}
	assert.Equal(t, "https://storage.googleapis.com/leads/inspiration/a.png", g.url("inspiration/a.png"))

	g.config.CDNDomain = "img.vyronexmotors.com"
	assert.Equal(t, "https://img.vyronexmotors.com/inspiration/a.png", g.url("inspiration/a.png"))
}
