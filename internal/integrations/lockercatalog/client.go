package lockercatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для внешнего сервиса каталога ячеек
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLocker получает ячейку по ID
// Для отсутствующей ячейки (404) возвращает nil, nil
func (c *Client) GetLocker(ctx context.Context, id string) (*domain.Locker, error) {
	var locker Locker
	found, err := c.get(ctx, "/internal/lockers/"+url.PathEscape(id), &locker)
	if err != nil {
		c.log.Error("GetLocker: catalog request failed for locker id=%s: %v", id, err)
		return nil, err
	}
	if !found {
		c.log.Info("GetLocker: locker id=%s not found in catalog", id)
		return nil, nil
	}
	return locker.ToDomain(), nil
}

// ListLockers получает все ячейки каталога
func (c *Client) ListLockers(ctx context.Context) ([]*domain.Locker, error) {
	var lockers []Locker
	found, err := c.get(ctx, "/internal/lockers", &lockers)
	if err != nil {
		c.log.Error("ListLockers: catalog request failed: %v", err)
		return nil, err
	}

	result := make([]*domain.Locker, 0, len(lockers))
	if !found {
		return result, nil
	}
	for i := range lockers {
		result = append(result, lockers[i].ToDomain())
	}
	return result, nil
}

// get выполняет GET запрос и декодирует ответ в out
// Возвращает false без ошибки при 404
func (c *Client) get(ctx context.Context, path string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return true, nil
}
