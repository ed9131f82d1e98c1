package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePutter struct {
	input *s3.PutObjectInput
	err   error
}

func (c *capturePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.input = params
	if c.err != nil {
		return nil, c.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3UploaderUpload(t *testing.T) {
	putter := &capturePutter{}
	up := &S3Uploader{client: putter, bucket: "enviromat-media", region: "ap-south-1"}

	url, err := up.Upload(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "enviromat-media", *putter.input.Bucket)
	assert.Equal(t, "image/jpeg", *putter.input.ContentType)
	assert.True(t, strings.HasSuffix(*putter.input.Key, ".jpg"))
	assert.Equal(t, "https://enviromat-media.s3.ap-south-1.amazonaws.com/"+*putter.input.Key, url)

	body, err := io.ReadAll(putter.input.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, body)
}

func TestS3UploaderBaseURL(t *testing.T) {
	putter := &capturePutter{}
	up := &S3Uploader{client: putter, bucket: "b", region: "r", baseURL: "https://cdn.enviromat.in"}

	url, err := up.Upload(context.Background(), []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.enviromat.in/"+*putter.input.Key, url)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestS3UploaderPutError(t *testing.T) {
	putter := &capturePutter{err: errors.New("denied")}
	up := &S3Uploader{client: putter, bucket: "b", region: "r"}

	_, err := up.Upload(context.Background(), []byte("x"), "image/jpeg")
	assert.Error(t, err)
}
