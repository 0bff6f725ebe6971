// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/api/auth/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResp は/api/auth/loginの成功レスポンスを表します。
// UserはIDとemailのみを含む公開アイデンティティで、クライアントが
// セッションの代わりに保持します。
type LoginResp struct {
	Message string       `json:"message"`
	User    IdentityItem `json:"user"`
}

// IdentityItem はログイン済みユーザーの公開プロジェクションです。
type IdentityItem struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
