package services

import "errors"

// サービス層のエラー
// コントローラーはerrors.IsでHTTPステータスコードに変換する
var (
	// ErrValidation 必須項目が欠けている
	ErrValidation = errors.New("必須項目が入力されていません")

	// ErrEmailTaken メールアドレスが既に登録されている
	ErrEmailTaken = errors.New("このメールアドレスは既に使用されています")

	// ErrInvalidCredentials メールアドレスまたはパスワードが一致しない
	ErrInvalidCredentials = errors.New("メールアドレスまたはパスワードが正しくありません")

	// ErrUserNotFound ユーザーが存在しない
	ErrUserNotFound = errors.New("ユーザーが見つかりません")

	// ErrInvalidToken トークンが無効または期限切れ
	ErrInvalidToken = errors.New("無効なトークンです")
)
