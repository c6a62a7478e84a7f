package redis_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"

	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/helpers"
)

// FindReportByKey returns the cached report payload, or nil on a miss.
func FindReportByKey(redisURL string, key string) ([]byte, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching key %s from Redis: %w", key, err)
	}

	return value, nil
}

// FindExcelByKey returns the cached spreadsheet, or nil on a miss.
func FindExcelByKey(redisURL string, key string) (*excelize.File, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encodedExcel, err := redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching key %s from Redis: %w", key, err)
	}

	excelBytes, err := base64.StdEncoding.DecodeString(encodedExcel)
	if err != nil {
		return nil, fmt.Errorf("error decoding cached spreadsheet: %w", err)
	}

	excelFile, err := excelize.OpenReader(bytes.NewReader(excelBytes))
	if err != nil {
		return nil, fmt.Errorf("error opening cached spreadsheet: %w", err)
	}

	return excelFile, nil
}
