package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/zstd"
)

// zstdEncoder общий на сервер: EncodeAll безопасен для конкурентного использования.
type zstdEncoder struct {
	enc *zstd.Encoder
}

func newZstdEncoder() (*zstdEncoder, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	return &zstdEncoder{enc: enc}, nil
}

func acceptsZstd(c *gin.Context) bool {
	for _, part := range strings.Split(c.GetHeader("Accept-Encoding"), ",") {
		if strings.EqualFold(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]), "zstd") {
			return true
		}
	}
	return false
}

// writeJSON отдаёт JSON, сжимая его zstd, если клиент это принимает.
func (z *zstdEncoder) writeJSON(c *gin.Context, status int, v interface{}) {
	if !acceptsZstd(c) {
		c.JSON(status, v)
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, GenericResponse{Success: false, Message: "Ошибка сериализации"})
		return
	}
	c.Header("Content-Encoding", "zstd")
	c.Header("Vary", "Accept-Encoding")
	c.Data(status, "application/json; charset=utf-8", z.enc.EncodeAll(body, nil))
}

func (z *zstdEncoder) Close() error {
	return z.enc.Close()
}
