package exporter

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/foodyatra/foodyatra/internal/cloudwriter"
	"github.com/foodyatra/foodyatra/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// OrderRecord is the flattened parquet row for archived orders.
type OrderRecord struct {
	ID              string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreatedAt       int64  `parquet:"name=created_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	RestaurantID    string `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantName  string `parquet:"name=restaurant_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Zone            string `parquet:"name=zone, type=BYTE_ARRAY, convertedtype=UTF8"`
	Items           string `parquet:"name=items, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemTotal       int64  `parquet:"name=item_total, type=INT64"`
	DeliveryFee     int64  `parquet:"name=delivery_fee, type=INT64"`
	PlatformFee     int64  `parquet:"name=platform_fee, type=INT64"`
	Discount        int64  `parquet:"name=discount, type=INT64"`
	TotalAmount     int64  `parquet:"name=total_amount, type=INT64"`
	CustomerPhone   string `parquet:"name=customer_phone, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status          string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	RiderID         string `parquet:"name=rider_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsPaid          bool   `parquet:"name=is_paid, type=BOOLEAN"`
}

// Exporter archives completed order history as parquet, locally and
// optionally to S3.
type Exporter struct {
	folder       string
	cloudFactory cloudwriter.CloudWriterFactory
	bucket       string
}

func New(config *models.Config) (*Exporter, error) {
	e := &Exporter{folder: config.ExportFolder, bucket: config.S3Bucket}
	if e.folder == "" {
		e.folder = "archive"
	}

	if config.S3Bucket != "" {
		factory, err := cloudwriter.NewS3WriterFactory(config.S3Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		e.cloudFactory = factory
	}

	return e, nil
}

// Export writes every terminal order created at or after since to a
// timestamped parquet file and returns its path. Terminal orders are
// never deleted from the store; the archive is a reporting copy.
func (e *Exporter) Export(orders []models.Order, since time.Time) (string, error) {
	if err := os.MkdirAll(e.folder, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(e.folder, fmt.Sprintf("orders-%s.parquet", time.Now().Format("20060102-150405")))
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return "", err
	}

	pw, err := writer.NewParquetWriter(fw, new(OrderRecord), 4)
	if err != nil {
		fw.Close()
		return "", err
	}

	count := 0
	for _, o := range orders {
		if !o.Status.Terminal() || o.CreatedAt.Before(since) {
			continue
		}
		if err := pw.Write(recordFor(o)); err != nil {
			pw.WriteStop()
			fw.Close()
			return "", fmt.Errorf("failed to write order %s: %w", o.ID, err)
		}
		count++
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return "", err
	}
	if err := fw.Close(); err != nil {
		return "", err
	}
	log.Printf("archived %d orders to %s", count, path)

	if e.cloudFactory != nil {
		if err := e.upload(path); err != nil {
			return path, err
		}
	}
	return path, nil
}

func (e *Exporter) upload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cw, err := e.cloudFactory.NewWriter(e.bucket, filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := cw.Write(data); err != nil {
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("failed to upload archive: %w", err)
	}
	log.Printf("uploaded %s to bucket %s", filepath.Base(path), e.bucket)
	return nil
}

func recordFor(o models.Order) OrderRecord {
	return OrderRecord{
		ID:             o.ID,
		CreatedAt:      o.CreatedAt.UnixMilli(),
		RestaurantID:   o.RestaurantID,
		RestaurantName: o.RestaurantName,
		Zone:           o.Zone,
		Items:          o.Items,
		ItemTotal:      int64(o.ItemTotal),
		DeliveryFee:    int64(o.DeliveryFee),
		PlatformFee:    int64(o.PlatformFee),
		Discount:       int64(o.Discount),
		TotalAmount:    int64(o.TotalAmount),
		CustomerPhone:  o.CustomerPhone,
		Status:         string(o.Status),
		RiderID:        o.RiderID,
		IsPaid:         o.IsPaid,
	}
}
