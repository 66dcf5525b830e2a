package consts

const (
	// AnonymousOwner 未携带任何身份信息的请求归属的默认用户。
	AnonymousOwner = "anonymous"

	// DefaultUploadExt 上传文件名没有扩展名时使用的默认扩展名。
	DefaultUploadExt = ".jpg"
)
