package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"

	"greenhouse-server/internal/uploads/domain"
	uploads_httpapi "greenhouse-server/internal/uploads/httpapi"
	uploads_httpapi_internal "greenhouse-server/internal/uploads/httpapi/internal"
	uploads_usecases "greenhouse-server/internal/uploads/usecases"
	mockusecases "greenhouse-server/test/unit/doubles/uploads/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("UploadController", func() {
	var controller *uploads_httpapi.UploadController
	var mockService *mockusecases.MockUploadService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockUploadService(ctrl)
		controller = uploads_httpapi.NewUploadController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	multipartBody := func(contentType, fieldID string, data []byte) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)

		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="photo"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		Expect(err).ToNot(HaveOccurred())
		_, err = part.Write(data)
		Expect(err).ToNot(HaveOccurred())

		if fieldID != "" {
			Expect(writer.WriteField("field_id", fieldID)).To(Succeed())
		}
		Expect(writer.Close()).To(Succeed())

		return body, writer.FormDataContentType()
	}

	Context("upload", func() {
		It("should upload a photo and return its URL", func() {
			body, contentType := multipartBody("image/jpeg", "pest-photo", []byte{0xFF, 0xD8, 0xFF})

			mockService.EXPECT().
				Upload(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req uploads_usecases.UploadRequest) (uploads_usecases.UploadResult, error) {
					Expect(req.ContentType).To(Equal("image/jpeg"))
					Expect(req.FieldID).To(Equal("pest-photo"))
					Expect(req.Data).To(HaveLen(3))
					return uploads_usecases.UploadResult{Key: "abc.jpg", URL: "/v1/uploads/abc.jpg"}, nil
				})

			request = httptest.NewRequest("POST", "/v1/uploads", body)
			request.Header.Set("Content-Type", contentType)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response uploads_httpapi_internal.UploadResponse
			err := json.Unmarshal(recorder.Body.Bytes(), &response)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.URL).To(Equal("/v1/uploads/abc.jpg"))
		})

		It("should reject an unsupported media type", func() {
			body, contentType := multipartBody("image/gif", "", []byte{0x47, 0x49, 0x46})

			mockService.EXPECT().
				Upload(gomock.Any(), gomock.Any()).
				Return(uploads_usecases.UploadResult{}, domain.ErrUnsupportedMediaType)

			request = httptest.NewRequest("POST", "/v1/uploads", body)
			request.Header.Set("Content-Type", contentType)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a request without a file part", func() {
			request = httptest.NewRequest("POST", "/v1/uploads", bytes.NewReader([]byte("not multipart")))
			request.Header.Set("Content-Type", "multipart/form-data; boundary=broken")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("fetch", func() {
		It("should serve the stored object with its content type", func() {
			mockService.EXPECT().
				Fetch(gomock.Any(), "abc.jpg").
				Return([]byte{0xFF, 0xD8}, "image/jpeg", nil)

			request = httptest.NewRequest("GET", "/v1/uploads/abc.jpg", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(Equal("image/jpeg"))
			Expect(recorder.Body.Bytes()).To(Equal([]byte{0xFF, 0xD8}))
		})

		It("should map missing objects to not found", func() {
			mockService.EXPECT().
				Fetch(gomock.Any(), "missing").
				Return(nil, "", uploads_usecases.ErrObjectNotFound)

			request = httptest.NewRequest("GET", "/v1/uploads/missing", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
