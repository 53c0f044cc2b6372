package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// InitValidator 初始化验证器
func InitValidator() {
	validate = validator.New()

	// 注册自定义验证函数
	validate.RegisterValidation("username", validateUsername)
	validate.RegisterValidation("asset_type", validateAssetType)
}

// GetValidator 获取验证器实例
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// RegisterGinValidations 将自定义验证规则注册到gin的binding引擎
// 使DTO中的binding:"username"与binding:"asset_type"生效
func RegisterGinValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", validateUsername)
		v.RegisterValidation("asset_type", validateAssetType)
	}
}

// validateUsername 验证用户名
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", username)
	return matched
}

// validateAssetType 验证资产类型标识，小写字母数字加下划线
func validateAssetType(fl validator.FieldLevel) bool {
	assetType := fl.Field().String()
	if len(assetType) == 0 || len(assetType) > 50 {
		return false
	}
	matched, _ := regexp.MatchString("^[a-z0-9_]+$", assetType)
	return matched
}

// ValidateStruct 验证结构体
func ValidateStruct(s interface{}) error {
	v := GetValidator()
	if err := v.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	var errors []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			var message string
			switch tag {
			case "required":
				message = fmt.Sprintf("%s是必填字段", field)
			case "min":
				message = fmt.Sprintf("%s不能小于%s", field, param)
			case "max":
				message = fmt.Sprintf("%s不能大于%s", field, param)
			case "oneof":
				message = fmt.Sprintf("%s必须是以下值之一: %s", field, param)
			case "username":
				message = fmt.Sprintf("%s只能包含字母、数字和下划线，长度3-50", field)
			case "asset_type":
				message = fmt.Sprintf("%s只能包含小写字母、数字和下划线", field)
			default:
				message = fmt.Sprintf("%s验证失败: %s", field, tag)
			}

			errors = append(errors, message)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return err
}
