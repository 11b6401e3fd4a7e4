// 通常包含包的文档说明，描述 txscript 包的目的和总体用途

/*
txscript 包实现了比特币交易脚本的编码、分类与构建。

比特币使用的脚本语言的完整描述可以在 https://en.bitcoin.it/wiki/Script 找到。
以下仅作为快速概述，提供有关如何使用该包的信息。

该包提供了解析、序列化、分类比特币交易脚本的数据结构和函数，以及为标准模板
（P2PKH、P2PK、P2SH、裸多签、OP_RETURN、P2SH 多签输入）构建脚本的构建器。

# 脚本概述

比特币交易脚本是用基于堆栈、类似 FORTH 的语言编写的，由一串操作码组成，
其中一部分操作码（直接压栈 0x01..0x4b 以及 OP_PUSHDATA1/2/4）会携带数据。
该包把这样的一个操作码流建模为一个有序的 Chunk 序列（见 chunk.go），并在此
之上提供解析、序列化、分类与构建操作。

本包不执行脚本：没有栈式求值引擎，不计算签名哈希，不做椭圆曲线运算。这些关
注点留给外部协作者（collaborators.go 绑定的 btcec/btcutil/ripemd160），本包
只依赖它们暴露的一小组契约。

# 错误

该包返回的错误类型为 txscript.Error。
这允许调用者通过检查断言的 txscript.Error 类型的 Code 字段（类型为 ErrorCode）以编程方式确定特定错误，同时仍然提供带有上下文信息的丰富错误消息。
还提供了一个名为 IsErrorCode 的便捷函数，允许调用者轻松检查特定的错误代码。
有关完整列表，请参阅包文档中的 ErrorCode。
*/
package txscript

/**

builder.go				为标准模板从类型化输入构建脚本。
builder_test.go			包含构建器的测试代码。
chunk.go				定义脚本中的最小单元：单个操作码或一次数据压栈。
chunk_test.go			包含 Chunk 不变量的测试代码。
collaborators.go		绑定公钥、地址与哈希原语等外部协作者。
doc.go					通常包含包的文档说明，描述 txscript 包的目的和总体用途。
errors.go				定义了脚本处理过程中可能遇到的错误类型。
mutator.go				提供就地修改脚本的变更器 API。
mutator_test.go			包含变更器 API 的测试代码。
opcode.go				包含比特币脚本语言中所有操作码的注册表。
opcode_test.go			包含操作码注册表的测试代码。
parser.go				将规范字节编码的脚本解析为有序的 Chunk 序列。
reader_writer.go		提供对脚本字节流的顺序读取与写入原语。
script.go				定义脚本本身：一个有序的 Chunk 序列。
serializer.go			将 Chunk 序列编码回规范的脚本字节。
standard.go				识别标准输出/输入模板，并为已识别的脚本生成类型标签。
standard_test.go		包含标准模板分类的测试代码。
text.go					提供脚本的人类可读文本形式：渲染与解析。
text_test.go			包含文本形式往返的测试代码。

*/
