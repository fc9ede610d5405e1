package application

import (
	"errors"
	"fmt"
)

// TransportError はバックエンド到達不能・クエリ拒否を表す型付きエラー。
// ステータス相当の数値コードとメッセージを持ち、元エラーを包む。
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status=%d): %v", e.Message, e.Status, e.Err)
	}
	return fmt.Sprintf("%s (status=%d)", e.Message, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError は単一レコード参照が 0 件だったことを表す。
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s が見つかりません: id=%d", e.Resource, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransport reports whether err wraps a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
