// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library and also works with other
// S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minioblob.New("localhost:9000", "minioadmin", "minioadmin", false, "datasets", "runs/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := blobstore.ReadAll(ctx, store, "points.txt")
//
// # Configuration Options
//
// Build the client yourself for anything beyond static credentials:
//
//	client, _ := minio.New("s3.example.com:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: true,
//	    Region: "us-east-1",
//	})
//	store := minioblob.NewStore(client, "datasets", "")
package minio
