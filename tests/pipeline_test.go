package tests

import (
	"bytes"
	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"
	"time"
)

// These tests run against live services, normally brought up with
// docker-compose. They exercise the whole pipeline: upload, variant
// generation, instruction retrieval and verification.
const (
	processingHost   = "0.0.0.0:8081"
	verificationHost = "0.0.0.0:8082"

	variantsPerImage = 100
)

func processingClient(t *testing.T) *httpexpect.Expect {
	u := url.URL{Scheme: "http", Host: processingHost}
	return httpexpect.Default(t, u.String())
}

func verificationClient(t *testing.T) *httpexpect.Expect {
	u := url.URL{Scheme: "http", Host: verificationHost}
	return httpexpect.Default(t, u.String())
}

func testPNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}

	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))

	return buf.Bytes()
}

func uploadImage(t *testing.T, e *httpexpect.Expect) string {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "pipeline_test.png")
	require.NoError(t, err)
	_, err = part.Write(testPNG(t))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	imageID := e.POST("/api/modify").
		WithHeader("Content-Type", writer.FormDataContentType()).
		WithBytes(body.Bytes()).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("image_id").String().NotEmpty().
		Raw()

	return imageID
}

func waitForProcessing(t *testing.T, e *httpexpect.Expect, imageID string) {
	deadline := time.Now().Add(2 * time.Minute)

	for time.Now().Before(deadline) {
		status := e.GET("/api/processing/" + imageID + "/status").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("processing_status").String().Raw()

		if status == "completed" {
			return
		}

		time.Sleep(2 * time.Second)
	}

	t.Fatalf("image %s was not processed in time", imageID)
}

func waitForVerification(t *testing.T, e *httpexpect.Expect, modificationID string) *httpexpect.Object {
	deadline := time.Now().Add(2 * time.Minute)

	for time.Now().Before(deadline) {
		resp := e.GET("/api/verification/" + modificationID + "/status").
			Expect()

		// The announcement may still be in flight.
		if resp.Raw().StatusCode == http.StatusNotFound {
			time.Sleep(2 * time.Second)
			continue
		}

		obj := resp.Status(http.StatusOK).JSON().Object()
		if obj.Value("verification_status").String().Raw() == "completed" {
			return obj
		}

		time.Sleep(2 * time.Second)
	}

	t.Fatalf("modification %s was not verified in time", modificationID)
	return nil
}

func TestFullPipeline(t *testing.T) {
	processing := processingClient(t)
	verification := verificationClient(t)

	imageID := uploadImage(t, processing)

	waitForProcessing(t, processing, imageID)

	t.Run("Image Details", func(t *testing.T) {
		resp := processing.GET("/api/images/" + imageID).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("image").Object().
			Value("id").String().IsEqual(imageID)
		resp.Value("variants_count").Number().IsEqual(variantsPerImage)
	})

	t.Run("Variants Are Listed In Order", func(t *testing.T) {
		resp := processing.GET("/api/images/" + imageID + "/variants").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("count").Number().IsEqual(variantsPerImage)

		variants := resp.Value("variants").Array()
		variants.Length().IsEqual(variantsPerImage)
		variants.Value(0).Object().Value("variant_number").Number().IsEqual(1)
		variants.Value(variantsPerImage - 1).Object().
			Value("variant_number").Number().IsEqual(variantsPerImage)
	})

	t.Run("Variant File Is Served", func(t *testing.T) {
		processing.GET("/static/modified/" + imageID + "_variant_001.png").
			Expect().
			Status(http.StatusOK)
	})

	t.Run("Instructions Are Retrievable", func(t *testing.T) {
		modificationID := processing.GET("/api/images/" + imageID + "/variants").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("variants").Array().Value(0).Object().
			Value("id").String().NotEmpty().Raw()

		resp := processing.GET("/internal/modifications/" + modificationID + "/instructions").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("modification_id").String().IsEqual(modificationID)
		resp.Value("image_id").String().IsEqual(imageID)
		resp.Value("algorithm_type").String().IsEqual("xor_transform")
		resp.Value("instructions").Object().
			Value("operations").Array().Length().Gt(0)
	})

	t.Run("Variant Verifies As Reversible", func(t *testing.T) {
		modificationID := processing.GET("/api/images/" + imageID + "/variants").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("variants").Array().Value(0).Object().
			Value("id").String().NotEmpty().Raw()

		verdict := waitForVerification(t, verification, modificationID)

		verdict.Value("is_reversible").Boolean().IsTrue()
		verdict.Value("verified_with_hash").Boolean().IsTrue()
		verdict.Value("verified_with_pixels").Boolean().IsTrue()
	})

	t.Run("Statistics Count The Run", func(t *testing.T) {
		resp := verification.GET("/api/verification/statistics").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("statistics").Object().
			Value("total_verifications").Number().Gt(0)
	})

	t.Run("History Is Recorded", func(t *testing.T) {
		resp := verification.GET("/api/verification/history").
			WithQuery("limit", 10).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("limit").Number().IsEqual(10)
		resp.Value("history").Array().Length().Gt(0)
	})
}

func TestInvalidUpload(t *testing.T) {
	e := processingClient(t)

	e.POST("/api/modify").
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		Value("error").String().Contains("file from request")
}

func TestProcessingStatusNotFound(t *testing.T) {
	e := processingClient(t)

	nonExistentID := "00000000-0000-0000-0000-000000000000"

	e.GET("/api/processing/" + nonExistentID + "/status").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		Value("error").String().Contains("not found")
}

func TestVerificationStatusNotFound(t *testing.T) {
	e := verificationClient(t)

	nonExistentID := "00000000-0000-0000-0000-000000000000"

	e.GET("/api/verification/" + nonExistentID + "/status").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		Value("error").String().Contains("not found")
}

func TestVerificationHealth(t *testing.T) {
	e := verificationClient(t)

	e.GET("/api/health").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("status").String().IsEqual("OK")
}
