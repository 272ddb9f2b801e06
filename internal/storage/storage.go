// Package storage connects the buckets for user photos and generated images
package storage

import (
	"fmt"
	"log"
	"time"

	"github.com/jhanaviii/AI-Travel-Agent/internal/storage/miniostorage"
	"github.com/wb-go/wbf/config"
)

func NewImgStorage(cfg *config.Config, bucket string, retries int, delay time.Duration) (*miniostorage.MinioImageStorage, error) {
	var client *miniostorage.MinioImageStorage
	var err error

	for i := range retries {
		log.Printf("Connecting to IMG-storage bucket %q...", bucket)
		client, err = miniostorage.NewMinioClient(cfg, bucket)
		if err == nil {
			log.Printf("Successfully connected IMG-storage bucket %q!", bucket)
			return client, nil
		}
		if i < retries-1 {
			log.Printf("Failed to init connection to IMG-storage: %v\nNext retry in %v...", err, delay)
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("IMG-storage bucket %q unavailable: %w", bucket, err)
}
