package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage uploads files to an S3-compatible object store.
type Storage struct {
	Bucket   string
	Region   string
	Endpoint string

	client *s3.S3
}

func NewStorage(bucket, region, endpoint, accessKey, secretKey string) (*Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, err
	}
	return &Storage{
		Bucket:   bucket,
		Region:   region,
		Endpoint: endpoint,
		client:   s3.New(sess),
	}, nil
}

// UploadFile stores the file under folder/fileName and returns a public URL.
func (st *Storage) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := st.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(st.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", st.Endpoint, st.Bucket, filePath), nil
}
