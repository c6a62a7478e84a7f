package redis_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/helpers"
)

// SaveReportToRedis caches a computed report envelope as JSON so repeated
// chart loads inside the TTL skip the aggregation entirely.
func SaveReportToRedis(redisURL string, key string, report any, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error serializing report: %w", err)
	}

	if err := redisClient.Set(ctx, key, payload, expiration).Err(); err != nil {
		return fmt.Errorf("error caching report in Redis: %w", err)
	}

	return nil
}

// SaveExcelToRedis caches a rendered spreadsheet base64-encoded.
func SaveExcelToRedis(redisURL string, key string, excelData *excelize.File, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	buf := new(bytes.Buffer)
	if err := excelData.Write(buf); err != nil {
		return fmt.Errorf("error serializing spreadsheet: %w", err)
	}

	encodedData := base64.StdEncoding.EncodeToString(buf.Bytes())

	if err := redisClient.Set(ctx, key, encodedData, expiration).Err(); err != nil {
		return fmt.Errorf("error caching spreadsheet in Redis: %w", err)
	}

	return nil
}
