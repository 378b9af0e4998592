package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dbx"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/auth"
	sc "github.com/Svmi93/projetHygieneResto-sub000/internal/server/config"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/models"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PhotoService keeps photo metadata in Postgres and the bytes in an
// S3-compatible bucket. Clients upload and download through presigned URLs.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *PhotoService {
	return &PhotoService{db: db, repomanager: m, config: config}
}

// StorageKey builds the object key of a new photo of tenant siret taken at t.
func StorageKey(siret string, t time.Time) string {
	return fmt.Sprintf("photos/%s/%04d/%02d/%02d/%v", siret, t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *PhotoService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (s *PhotoService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}
	return newS3PresignClient(client), nil
}

// RequestUpload registers a pending photo and returns a presigned PUT URL
// for its bytes. The upload must send the same Content-Type.
func (s *PhotoService) RequestUpload(ctx context.Context, caller auth.Identity, req dto.PhotoUploadRequest) (*dto.PhotoUploadResponse, error) {
	siret, err := ownTenant(caller)
	if err != nil {
		return nil, err
	}
	if !allowedPhotoTypes[req.ContentType] {
		ve := common.NewValidationError()
		ve.Add("contentType", "must be image/jpeg, image/png or image/webp")
		return nil, ve
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(siret, time.Now().UTC())

	// Presigned PUT
	signed, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(s.config.PresignValidityDuration))
	if err != nil {
		return nil, err
	}

	p, err := s.repomanager.Photos(s.db).Create(ctx, &models.Photo{
		AdminClientSiret: siret,
		UploadedBy:       caller.UserID,
		StorageKey:       key,
		ContentType:      req.ContentType,
		Status:           models.PhotoStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating photo: %w", err)
	}

	return &dto.PhotoUploadResponse{Photo: p.DTO(), UploadURL: signed.URL}, nil
}

// Confirm marks a photo as uploaded once the client has PUT its bytes.
func (s *PhotoService) Confirm(ctx context.Context, caller auth.Identity, id string) error {
	repo := s.repomanager.Photos(s.db)
	if _, err := s.load(ctx, repo, caller, id); err != nil {
		return err
	}
	return repo.MarkUploaded(ctx, id)
}

// URL returns a presigned GET URL for the photo.
func (s *PhotoService) URL(ctx context.Context, caller auth.Identity, id string) (*dto.PhotoURLResponse, error) {
	p, err := s.load(ctx, s.repomanager.Photos(s.db), caller, id)
	if err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	// Presigned GET
	signed, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &p.StorageKey,
	}, s3.WithPresignExpires(s.config.PresignValidityDuration))
	if err != nil {
		return nil, err
	}

	return &dto.PhotoURLResponse{URL: signed.URL}, nil
}

func (s *PhotoService) ListByClient(ctx context.Context, caller auth.Identity, siret string) ([]*dto.Photo, error) {
	siret, err := tenantScope(caller, siret)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Photos(s.db).ListBySiret(ctx, siret)
	if err != nil {
		return nil, fmt.Errorf("error listing photos: %w", err)
	}

	result := make([]*dto.Photo, 0, len(items))
	for _, p := range items {
		result = append(result, p.DTO())
	}
	return result, nil
}

// Delete removes the photo row and its object. The row is kept when the
// object cannot be deleted.
func (s *PhotoService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	p, err := s.load(ctx, s.repomanager.Photos(s.db), caller, id)
	if err != nil {
		return err
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Photos(tx).Delete(ctx, id); err != nil {
			return err
		}
		bucket := s.config.S3Bucket
		if _, err := deleteObject(client, ctx, &s3.DeleteObjectInput{Bucket: &bucket, Key: &p.StorageKey}); err != nil {
			return fmt.Errorf("error deleting object: %w", err)
		}
		return nil
	})
}

type photoGetter interface {
	GetByID(ctx context.Context, id string) (*models.Photo, error)
}

func (s *PhotoService) load(ctx context.Context, repo photoGetter, caller auth.Identity, id string) (*models.Photo, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(caller, p.AdminClientSiret) {
		return nil, common.ErrorNotFound
	}
	return p, nil
}
