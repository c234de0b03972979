// Package dto defines the data transfer objects of the member HTTP transport.
package dto

// KakaoLoginReq is the query of the Kakao redirect callback.
type KakaoLoginReq struct {
	Code string `form:"code" binding:"required"`
}
