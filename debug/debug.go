package debug

import (
	"diode"
	"errors"
	"io"
)

var (
	ErrNoResult = errors.New("debug: no result")         // 没有可渲染的求解结果
	ErrNoUpdate = errors.New("debug: no update function") // 缺少牛顿更新映射
)

// Renderer 结果输出接口
type Renderer interface {
	Render(w io.Writer) error
}

func checkResult(res *diode.Result) error {
	if res == nil || res.Result == nil {
		return ErrNoResult
	}
	return nil
}
